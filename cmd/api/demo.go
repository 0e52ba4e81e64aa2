package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/config"
	"github.com/kimce-studio/workday-backend-go/internal/fixtures"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed an in-memory instance and print the resulting summaries",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	a := buildApp(cfg)
	ctx := context.Background()

	collaborators, err := fixtures.Seed(ctx, a.seed)
	if err != nil {
		return fmt.Errorf("error seeding demo state: %w", err)
	}

	today := time.Now()
	offset := (int(today.Weekday()) + 6) % 7
	monday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).AddDate(0, 0, -offset)

	for _, c := range collaborators {
		summary, err := a.seed.Attendance.WeekSummary(ctx, c.ID, monday)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %+v\n", c.FullName, summary)
	}

	pending, err := a.seed.Approvals.PendingRequests(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Pendientes:", len(pending))

	stats, err := a.analytics.TeamWeeklyStats(ctx, monday)
	if err != nil {
		return err
	}
	fmt.Printf("Horas equipo: %+v\n", stats)

	return nil
}
