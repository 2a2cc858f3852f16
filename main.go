package main

import (
	"os"

	"github.com/abhisek/caliper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
