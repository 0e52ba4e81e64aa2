package calendar

import (
	"context"
	"time"
)

// CalendarService derives calendar views from worked shifts, holidays and
// approved time-off. All builds are pure reads recomputed from scratch.
type CalendarService interface {
	// BuildMonth unions standing events, completed shifts and holidays for
	// a month, sorted ascending by start instant.
	BuildMonth(ctx context.Context, month time.Month, year int) ([]EventResponse, error)

	// ByCollaborator lists a collaborator's standing events sorted by start.
	ByCollaborator(ctx context.Context, collaboratorID string) ([]EventResponse, error)

	// TeamLoad counts time entries per collaborator for a single day.
	TeamLoad(ctx context.Context, day time.Time) (map[string]int, error)
}
