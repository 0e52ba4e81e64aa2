package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for attendance records. At most
// one entry exists per (collaborator, day); Upsert replaces any existing
// entry for the same day.
type TimeEntryRepository interface {
	// GetByDay retrieves the entry for a collaborator on a calendar day.
	// Returns ErrEntryNotFound when none exists.
	GetByDay(ctx context.Context, collaboratorID string, day time.Time) (*TimeEntry, error)

	// Upsert stores an entry, replacing the same-day entry if present.
	Upsert(ctx context.Context, entry *TimeEntry) error

	// ListByCollaborator retrieves all entries for a collaborator ordered
	// by day ascending.
	ListByCollaborator(ctx context.Context, collaboratorID string) ([]*TimeEntry, error)

	// ListRange retrieves a collaborator's entries with start <= day <= end.
	ListRange(ctx context.Context, collaboratorID string, start, end time.Time) ([]*TimeEntry, error)
}
