package request

import (
	"context"
)

// RequestRepository defines data access for submitted requests. Requests
// live in their collaborator's history; the pending queue is a projection
// rebuilt by scanning every history, never authoritative storage.
type RequestRepository interface {
	// Create appends a request to its collaborator's history
	Create(ctx context.Context, r *Request) error

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (*Request, error)

	// Update persists a request's mutated review state
	Update(ctx context.Context, r *Request) error

	// ListByCollaborator retrieves a collaborator's requests ordered by
	// creation instant ascending.
	ListByCollaborator(ctx context.Context, collaboratorID string) ([]*Request, error)

	// ListPending scans every collaborator's history for pending requests.
	ListPending(ctx context.Context) ([]*Request, error)

	// ListApproved scans every history for approved requests of a type.
	ListApproved(ctx context.Context, t Type) ([]*Request, error)
}
