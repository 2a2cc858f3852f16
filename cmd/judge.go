package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/judge"
	"github.com/abhisek/caliper/internal/llm"
	"github.com/abhisek/caliper/internal/measure"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/store"
	"github.com/spf13/cobra"
)

var judgeCmd = &cobra.Command{
	Use:   "judge <item-id> <answer>",
	Short: "Grade one answer without touching any session",
	Long:  "Grades a free-text answer against a catalog item and prints the measurement, interpreted reading, and the probe the policy would ask. Useful for prompt and threshold tuning.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		it, err := bank.ItemByID(args[0])
		if err != nil {
			return err
		}
		feats := bank.FeaturesFor(it.SchemaID)

		// Log the request if a store is reachable; grade without one otherwise.
		var events store.EventRepo
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				events = st.EventRepo()
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, events)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		j := judge.New(provider, judge.DefaultConfig())
		m, err := j.Grade(ctx, it, feats, args[1])
		if err != nil {
			return fmt.Errorf("grade: %w", err)
		}

		reading, notes := measure.Interpret(m, feats, measure.DefaultConfig())
		probe, trace := policy.NewEngine(policy.DefaultConfig(), nil).Decide(it, feats, m, reading)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return err
		}

		fmt.Printf("\nlabel: %s (p=%.2f, confidence=%.2f)\n", reading.FinalLabel, reading.FinalP, m.Confidence())
		if probe.Intent == policy.IntentNone {
			fmt.Println("probe: none")
		} else {
			fmt.Printf("probe: [%s/%s] %s\n", probe.Intent, probe.Source, probe.Text)
		}
		for _, line := range append(notes, trace...) {
			fmt.Println("  " + line)
		}
		return nil
	},
}
