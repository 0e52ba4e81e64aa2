package timesheet

import (
	"context"
	"time"
)

// AttendanceService enforces the legal sequence of clock events for one
// collaborator per day and exposes the portal's read queries.
type AttendanceService interface {
	// CheckIn opens the day. Fails when a check-in already exists.
	CheckIn(ctx context.Context, collaboratorID string, req MarkRequest) (EntryResponse, error)

	// StartBreak opens an unpaid break. Fails when not checked in, a break
	// is already open, or the day is closed.
	StartBreak(ctx context.Context, collaboratorID string, req MarkRequest) (EntryResponse, error)

	// EndBreak closes the open break. Fails when no break is open or the
	// day is closed.
	EndBreak(ctx context.Context, collaboratorID string, req MarkRequest) (EntryResponse, error)

	// CheckOut closes the day. Fails when not checked in or already closed.
	CheckOut(ctx context.Context, collaboratorID string, req MarkRequest) (EntryResponse, error)

	// Annotate appends a note to a day's entry, creating it if needed.
	Annotate(ctx context.Context, collaboratorID string, req AnnotateRequest) (EntryResponse, error)

	// ActionAvailability derives the enabled clock actions for a day.
	ActionAvailability(ctx context.Context, collaboratorID string, day time.Time) (AvailabilityResponse, error)

	// WeekSummary aggregates worked vs expected hours over the seven days
	// starting at weekStart.
	WeekSummary(ctx context.Context, collaboratorID string, weekStart time.Time) (WeekSummaryResponse, error)

	// AggregatedHistory groups the collaborator's entries into per-ISO-week
	// worked/expected totals, keyed "2006-W02".
	AggregatedHistory(ctx context.Context, collaboratorID string) (map[string]WeekTotals, error)

	// BalanceOverview splits the signed hours balance into the owed-to and
	// owed-by figures.
	BalanceOverview(ctx context.Context, collaboratorID string) (BalanceOverviewResponse, error)
}
