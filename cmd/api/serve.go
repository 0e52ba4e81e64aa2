package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kimce-studio/workday-backend-go/internal/config"
	"github.com/kimce-studio/workday-backend-go/internal/fixtures"
	"github.com/spf13/cobra"
)

var serveDemo bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveDemo, "demo", false, "seed demo collaborators before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	a := buildApp(cfg)

	if serveDemo {
		if _, err := fixtures.Seed(context.Background(), a.seed); err != nil {
			return fmt.Errorf("error seeding demo state: %w", err)
		}
		slog.Info("Demo state seeded")
	}

	a.scheduler.Start()
	defer a.scheduler.Stop()

	addr := cfg.App.Addr()
	slog.Info("Server starting", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, a.router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
