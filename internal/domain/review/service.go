package review

import (
	"context"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
)

// ApprovalService reviews pending requests across all collaborators and
// applies balance and calendar side effects on approval. Side effects are
// applied exactly once, at approval time, and never retried or reversed;
// corrections go through the manual adjustment operations.
type ApprovalService interface {
	// IngestPending rebuilds the pending-request queue projection by
	// scanning every collaborator's history. Safe to call repeatedly.
	IngestPending(ctx context.Context) error

	// PendingRequests rebuilds and returns the pending queue.
	PendingRequests(ctx context.Context) ([]request.RequestResponse, error)

	// Review dispatches a review action. Only approve applies the
	// request-type side effect; an invalid action, or reject/correction
	// without a comment, fails the whole review with no partial mutation.
	Review(ctx context.Context, req request.ReviewRequest) (request.RequestResponse, error)

	// AdjustHours applies a signed manual delta to a collaborator's
	// hours balance.
	AdjustHours(ctx context.Context, req AdjustHoursRequest) error

	// FixTimeEntry replaces a collaborator's entry for a day outright.
	FixTimeEntry(ctx context.Context, req timesheet.FixEntryRequest) (timesheet.EntryResponse, error)

	// ExportHistory renders a collaborator's entries as CSV-shaped rows.
	ExportHistory(ctx context.Context, collaboratorID string) ([]timesheet.ExportRow, error)

	// Holiday management
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	RemoveHoliday(ctx context.Context, name string, day time.Time) error
	ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error)
}
