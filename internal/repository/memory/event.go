package memory

import (
	"context"
	"sort"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/calendar"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

var _ calendar.EventRepository = (*EventRepository)(nil)

func (r *EventRepository) Append(ctx context.Context, e calendar.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.events = append(r.store.events, e)
	return nil
}

func (r *EventRepository) ListMonth(ctx context.Context, month time.Month, year int) ([]calendar.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []calendar.Event
	for _, e := range r.store.events {
		if e.Start.Month() == month && e.Start.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventRepository) ListByCollaborator(ctx context.Context, collaboratorID string) ([]calendar.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []calendar.Event
	for _, e := range r.store.events {
		if e.CollaboratorID == collaboratorID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
