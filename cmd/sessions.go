package cmd

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/caliper/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect assessment sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions, most recently active first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-12s  %5s  %6s  %5s  %s\n",
			"ID", "User", "Turns", "Theta", "SE", "Updated")
		fmt.Println(strings.Repeat("─", 90))
		for _, s := range sessions {
			fmt.Printf("%-36s  %-12s  %5d  %6.2f  %5.2f  %s\n",
				s.ID, s.UserTag, s.TurnCount, s.ThetaMean, math.Sqrt(s.ThetaVar),
				s.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var sessionsTurnsCmd = &cobra.Command{
	Use:   "turns <session-id>",
	Short: "Show a session's turn history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if _, err := st.SessionRepo().Get(ctx, args[0]); err != nil {
			return err
		}
		turns, err := st.EventRepo().ListTurns(ctx, args[0])
		if err != nil {
			return fmt.Errorf("list turns: %w", err)
		}
		if len(turns) == 0 {
			fmt.Println("No turns recorded yet.")
			return nil
		}

		for _, t := range turns {
			fmt.Printf("turn %d  %s\n", t.TurnIndex, t.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("  item:   %s\n", t.ItemID)
			fmt.Printf("  answer: %s\n", t.AnswerText)
			if t.FollowupText != "" {
				fmt.Printf("  probe:  %s (%s)\n", t.ProbeIntent, t.ProbeSource)
				fmt.Printf("  reply:  %s\n", t.FollowupText)
			}
			fmt.Printf("  graded: %s (p=%.2f)\n", t.FinalLabel, t.FinalP)
			fmt.Printf("  theta:  %.2f → %.2f (se %.2f)\n", t.ThetaBefore, t.ThetaAfter, t.SEAfter)
			if t.NextItemID != "" {
				fmt.Printf("  next:   %s\n", t.NextItemID)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsTurnsCmd)
}
