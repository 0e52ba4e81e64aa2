package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for configured holidays.
type HolidayRepository interface {
	// Create stores a holiday
	Create(ctx context.Context, h Holiday) error

	// Remove deletes the holiday matching name and day
	Remove(ctx context.Context, name string, day time.Time) error

	// List retrieves all holidays ordered by day ascending
	List(ctx context.Context) ([]Holiday, error)

	// ListMonth retrieves holidays falling in the given month
	ListMonth(ctx context.Context, month time.Month, year int) ([]Holiday, error)
}
