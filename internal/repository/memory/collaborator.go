package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
)

type CollaboratorRepository struct {
	store *Store
}

func NewCollaboratorRepository(store *Store) *CollaboratorRepository {
	return &CollaboratorRepository{store: store}
}

var _ collaborator.CollaboratorRepository = (*CollaboratorRepository)(nil)

func (r *CollaboratorRepository) Create(ctx context.Context, c collaborator.Collaborator) (collaborator.Collaborator, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.byEmail[c.Email]; exists {
		return collaborator.Collaborator{}, collaborator.ErrEmailExists
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Schedule == nil {
		c.Schedule = collaborator.DefaultWeeklySchedule()
	}

	// The history is created with the collaborator and never reassigned.
	r.store.histories[c.ID] = &history{
		collaborator: c,
		entries:      make(map[string]*timesheet.TimeEntry),
		requests:     make([]*request.Request, 0),
	}
	r.store.byEmail[c.Email] = c.ID

	return c, nil
}

func (r *CollaboratorRepository) GetByID(ctx context.Context, id string) (collaborator.Collaborator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.historyOf(id)
	if !ok {
		return collaborator.Collaborator{}, collaborator.ErrCollaboratorNotFound
	}
	return h.collaborator, nil
}

func (r *CollaboratorRepository) GetByEmail(ctx context.Context, email string) (collaborator.Collaborator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byEmail[email]
	if !ok {
		return collaborator.Collaborator{}, collaborator.ErrCollaboratorNotFound
	}
	return r.store.histories[id].collaborator, nil
}

func (r *CollaboratorRepository) List(ctx context.Context) ([]collaborator.Collaborator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]collaborator.Collaborator, 0, len(r.store.histories))
	for _, h := range r.store.sortedHistories() {
		out = append(out, h.collaborator)
	}
	return out, nil
}

func (r *CollaboratorRepository) Balance(ctx context.Context, id string) (time.Duration, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.historyOf(id)
	if !ok {
		return 0, collaborator.ErrCollaboratorNotFound
	}
	return h.balance, nil
}

func (r *CollaboratorRepository) AddToBalance(ctx context.Context, id string, delta time.Duration) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	h, ok := r.store.historyOf(id)
	if !ok {
		return collaborator.ErrCollaboratorNotFound
	}
	h.balance += delta
	return nil
}
