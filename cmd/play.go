package cmd

import (
	"fmt"

	"github.com/abhisek/caliper/internal/judge"
	"github.com/abhisek/caliper/internal/llm"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/store"
	"github.com/abhisek/caliper/internal/tui"
	"github.com/abhisek/caliper/internal/turn"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive assessment session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, builds dependencies, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Grading requires an LLM provider; there is no offline mode.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	svc := turn.NewService(
		st.SessionRepo(),
		st.EventRepo(),
		judge.New(provider, judge.DefaultConfig()),
		policy.NewEngine(policy.DefaultConfig(), nil),
		turn.DefaultConfig(),
	)

	return tui.Run(svc)
}
