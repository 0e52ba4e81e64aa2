package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/calendar"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
)

// history is one collaborator's consolidated state: the per-day entries,
// the submitted requests and the running hours balance.
type history struct {
	collaborator collaborator.Collaborator
	entries      map[string]*timesheet.TimeEntry // keyed by YYYY-MM-DD
	requests     []*request.Request
	balance      time.Duration
}

// Store is the in-memory backing for every repository. One RWMutex guards
// structural access; logical serialization per collaborator is the
// services' keyed-mutex concern, not the store's.
type Store struct {
	mu        sync.RWMutex
	histories map[string]*history
	byEmail   map[string]string // email -> collaborator ID
	requests  map[string]string // request ID -> collaborator ID
	holidays  []holiday.Holiday
	events    []calendar.Event
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		histories: make(map[string]*history),
		byEmail:   make(map[string]string),
		requests:  make(map[string]string),
	}
}

func (s *Store) historyOf(id string) (*history, bool) {
	h, ok := s.histories[id]
	return h, ok
}

// sortedHistories returns histories in collaborator-ID order so list reads
// are deterministic.
func (s *Store) sortedHistories() []*history {
	out := make([]*history, 0, len(s.histories))
	for _, h := range s.histories {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].collaborator.ID < out[j].collaborator.ID
	})
	return out
}
