package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/abhisek/caliper/internal/judge"
	"github.com/abhisek/caliper/internal/llm"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/server"
	"github.com/abhisek/caliper/internal/store"
	"github.com/abhisek/caliper/internal/turn"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		grader := judge.New(provider, judge.DefaultConfig())
		svc := turn.NewService(
			st.SessionRepo(),
			st.EventRepo(),
			grader,
			policy.NewEngine(policy.DefaultConfig(), nil),
			turn.DefaultConfig(),
		)

		cfg := server.DefaultConfig()
		if addr != "" {
			cfg.Addr = addr
		}
		srv := server.New(cfg, server.NewHandlers(svc, grader, st.SessionRepo(), st.EventRepo()))

		errc := make(chan error, 1)
		go func() {
			slog.Info("listening", "addr", cfg.Addr, "db", dbPath)
			errc <- srv.Run()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Stop(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8475)")
}
