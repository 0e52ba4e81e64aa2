package memory

import (
	"context"
	"sort"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
)

type RequestRepository struct {
	store *Store
}

func NewRequestRepository(store *Store) *RequestRepository {
	return &RequestRepository{store: store}
}

var _ request.RequestRepository = (*RequestRepository)(nil)

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	h, ok := r.store.historyOf(req.CollaboratorID)
	if !ok {
		return collaborator.ErrCollaboratorNotFound
	}

	h.requests = append(h.requests, req.Clone())
	r.store.requests[req.ID] = req.CollaboratorID
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*request.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	collaboratorID, ok := r.store.requests[id]
	if !ok {
		return nil, request.ErrRequestNotFound
	}

	for _, req := range r.store.histories[collaboratorID].requests {
		if req.ID == id {
			return req.Clone(), nil
		}
	}
	return nil, request.ErrRequestNotFound
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	collaboratorID, ok := r.store.requests[req.ID]
	if !ok {
		return request.ErrRequestNotFound
	}

	h := r.store.histories[collaboratorID]
	for i, stored := range h.requests {
		if stored.ID == req.ID {
			h.requests[i] = req.Clone()
			return nil
		}
	}
	return request.ErrRequestNotFound
}

func (r *RequestRepository) ListByCollaborator(ctx context.Context, collaboratorID string) ([]*request.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.historyOf(collaboratorID)
	if !ok {
		return nil, collaborator.ErrCollaboratorNotFound
	}

	out := make([]*request.Request, 0, len(h.requests))
	for _, req := range h.requests {
		out = append(out, req.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *RequestRepository) ListPending(ctx context.Context) ([]*request.Request, error) {
	return r.listByStatus(request.StatusPending, "")
}

func (r *RequestRepository) ListApproved(ctx context.Context, t request.Type) ([]*request.Request, error) {
	return r.listByStatus(request.StatusApproved, t)
}

func (r *RequestRepository) listByStatus(status request.Status, t request.Type) ([]*request.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*request.Request
	for _, h := range r.store.sortedHistories() {
		for _, req := range h.requests {
			if req.Status != status {
				continue
			}
			if t != "" && req.Type != t {
				continue
			}
			out = append(out, req.Clone())
		}
	}
	return out, nil
}
