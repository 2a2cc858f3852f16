package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the item bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-8s  %-14s  %-12s  %6s  %5s  %s\n",
			"ID", "Family", "Coverage", "Diff", "Disc", "Stimulus")
		fmt.Println(strings.Repeat("─", 100))
		for _, it := range bank.Items() {
			text := it.Text
			if len(text) > 48 {
				text = text[:48] + "…"
			}
			fmt.Printf("%-8s  %-14s  %-12s  %6.2f  %5.2f  %s\n",
				it.ID, it.Family, it.CoverageTag, it.Diff, it.Disc, text)
		}
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show <item-id>",
	Short: "Show a single item with its grading features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := bank.ItemByID(args[0])
		if err != nil {
			return err
		}
		feats := bank.FeaturesFor(it.SchemaID)

		fmt.Printf("ID:          %s\n", it.ID)
		fmt.Printf("Family:      %s\n", it.Family)
		fmt.Printf("Schema:      %s\n", it.SchemaID)
		fmt.Printf("Coverage:    %s\n", it.CoverageTag)
		fmt.Printf("Difficulty:  %.2f\n", it.Diff)
		fmt.Printf("Discrim.:    %.2f\n", it.Disc)
		fmt.Printf("Stimulus:    %s\n", it.Text)
		if feats.ExpectedListCount > 0 {
			fmt.Printf("List count:  %d\n", feats.ExpectedListCount)
		}
		if feats.ExpectDirectionWord {
			fmt.Println("Expects a direction word")
		}
		if len(feats.RequiredMoves) > 0 {
			fmt.Printf("Required moves: %s\n", strings.Join(feats.RequiredMoves, ", "))
		}
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bank.Validate(); err != nil {
			return err
		}
		fmt.Printf("catalog OK: %d items\n", len(bank.Items()))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
