package calendar

import (
	"context"
	"time"
)

// EventRepository stores the standing calendar events produced by approved
// requests. Shift and holiday events are synthesized at read time and are
// never stored.
type EventRepository interface {
	// Append stores a standing event
	Append(ctx context.Context, e Event) error

	// ListMonth retrieves standing events starting in the given month
	ListMonth(ctx context.Context, month time.Month, year int) ([]Event, error)

	// ListByCollaborator retrieves a collaborator's standing events
	// ordered by start ascending.
	ListByCollaborator(ctx context.Context, collaboratorID string) ([]Event, error)
}
