package memory

import (
	"context"
	"sort"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
)

type HolidayRepository struct {
	store *Store
}

func NewHolidayRepository(store *Store) *HolidayRepository {
	return &HolidayRepository{store: store}
}

var _ holiday.HolidayRepository = (*HolidayRepository)(nil)

func (r *HolidayRepository) Create(ctx context.Context, h holiday.Holiday) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.holidays = append(r.store.holidays, h)
	return nil
}

func (r *HolidayRepository) Remove(ctx context.Context, name string, day time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	kept := r.store.holidays[:0]
	removed := false
	for _, h := range r.store.holidays {
		if h.Name == name && sameDay(h.Day, day) {
			removed = true
			continue
		}
		kept = append(kept, h)
	}
	r.store.holidays = kept
	if !removed {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *HolidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := append([]holiday.Holiday(nil), r.store.holidays...)
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (r *HolidayRepository) ListMonth(ctx context.Context, month time.Month, year int) ([]holiday.Holiday, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []holiday.Holiday
	for _, h := range r.store.holidays {
		if h.Day.Month() == month && h.Day.Year() == year {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
