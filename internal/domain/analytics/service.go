package analytics

import (
	"context"
	"time"
)

// AnalyticsService provides read-only statistics over all collaborators'
// histories. Reads are snapshots; approvals landing mid-scan are picked up
// on the next query.
type AnalyticsService interface {
	// DebtVsCredit sums per-collaborator balances into the non-negative
	// owed-to-team and owed-by-team figures.
	DebtVsCredit(ctx context.Context) (BalanceSummary, error)

	// HoursByProject sums approved special-activity hours grouped by
	// project. Activities without a project fall under "sin_proyecto".
	HoursByProject(ctx context.Context) (map[string]float64, error)

	// TeamWeeklyStats aggregates worked vs expected hours over the seven
	// days starting at weekStart, respecting each collaborator's schedule.
	TeamWeeklyStats(ctx context.Context, weekStart time.Time) (TeamWeeklyStats, error)

	// PunctualityTrend reports the average check-in hour per collaborator.
	PunctualityTrend(ctx context.Context) ([]PunctualityTrendEntry, error)

	// PunctualityRanking ranks collaborators by the share of their
	// check-ins at or before the nominal start of day, descending.
	PunctualityRanking(ctx context.Context) ([]PunctualityRankEntry, error)
}
