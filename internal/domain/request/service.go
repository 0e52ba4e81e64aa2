package request

import (
	"context"
)

// RequestService handles submission and listing of requests. Review is the
// approval engine's job; creation validates the payload so malformed
// requests are rejected before they ever reach a reviewer.
type RequestService interface {
	// Create validates the payload against the request type and appends
	// the request, status pending, to the collaborator's history.
	Create(ctx context.Context, collaboratorID string, req CreateRequestRequest) (RequestResponse, error)

	// History lists a collaborator's requests ordered by creation instant.
	History(ctx context.Context, collaboratorID string) ([]RequestResponse, error)
}
