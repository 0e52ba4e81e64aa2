package collaborator

import (
	"context"
	"time"
)

// CollaboratorRepository defines data access for collaborators and their
// running hours balance. The balance sits here rather than in its own
// repository because it is owned by exactly one collaborator history.
type CollaboratorRepository interface {
	// Create registers a new collaborator
	Create(ctx context.Context, c Collaborator) (Collaborator, error)

	// GetByID retrieves a collaborator by ID
	GetByID(ctx context.Context, id string) (Collaborator, error)

	// GetByEmail retrieves a collaborator by email
	GetByEmail(ctx context.Context, email string) (Collaborator, error)

	// List retrieves all collaborators
	List(ctx context.Context) ([]Collaborator, error)

	// Balance returns the signed hours balance for a collaborator.
	// Positive means hours owed to the collaborator.
	Balance(ctx context.Context, id string) (time.Duration, error)

	// AddToBalance applies a signed delta to the hours balance.
	AddToBalance(ctx context.Context, id string, delta time.Duration) error
}
