package memory

import (
	"context"
	"sort"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
)

type TimeEntryRepository struct {
	store *Store
}

func NewTimeEntryRepository(store *Store) *TimeEntryRepository {
	return &TimeEntryRepository{store: store}
}

var _ timesheet.TimeEntryRepository = (*TimeEntryRepository)(nil)

func (r *TimeEntryRepository) GetByDay(ctx context.Context, collaboratorID string, day time.Time) (*timesheet.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.historyOf(collaboratorID)
	if !ok {
		return nil, collaborator.ErrCollaboratorNotFound
	}

	entry, ok := h.entries[timesheet.DayKey(day)]
	if !ok {
		return nil, timesheet.ErrEntryNotFound
	}
	return entry.Clone(), nil
}

func (r *TimeEntryRepository) Upsert(ctx context.Context, entry *timesheet.TimeEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	h, ok := r.store.historyOf(entry.CollaboratorID)
	if !ok {
		return collaborator.ErrCollaboratorNotFound
	}

	// Replaces any same-day entry: one TimeEntry per (collaborator, day).
	h.entries[timesheet.DayKey(entry.Day)] = entry.Clone()
	return nil
}

func (r *TimeEntryRepository) ListByCollaborator(ctx context.Context, collaboratorID string) ([]*timesheet.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.historyOf(collaboratorID)
	if !ok {
		return nil, collaborator.ErrCollaboratorNotFound
	}
	return sortedEntries(h), nil
}

func (r *TimeEntryRepository) ListRange(ctx context.Context, collaboratorID string, start, end time.Time) ([]*timesheet.TimeEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.historyOf(collaboratorID)
	if !ok {
		return nil, collaborator.ErrCollaboratorNotFound
	}

	startKey := timesheet.DayKey(start)
	endKey := timesheet.DayKey(end)

	var out []*timesheet.TimeEntry
	for key, entry := range h.entries {
		if key >= startKey && key <= endKey {
			out = append(out, entry.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func sortedEntries(h *history) []*timesheet.TimeEntry {
	out := make([]*timesheet.TimeEntry, 0, len(h.entries))
	for _, entry := range h.entries {
		out = append(out, entry.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}
