package request

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/keylock"
)

type RequestServiceImpl struct {
	request.RequestRepository
	collaborator.CollaboratorRepository
	locks *keylock.KeyedMutex
	now   func() time.Time
}

var _ request.RequestService = (*RequestServiceImpl)(nil)

func NewRequestService(
	requestRepo request.RequestRepository,
	collaboratorRepo collaborator.CollaboratorRepository,
	locks *keylock.KeyedMutex,
) *RequestServiceImpl {
	return &RequestServiceImpl{
		RequestRepository:      requestRepo,
		CollaboratorRepository: collaboratorRepo,
		locks:                  locks,
		now:                    time.Now,
	}
}

// Create implements request.RequestService. The payload is validated here,
// at submission time, so approval never meets a malformed request.
func (s *RequestServiceImpl) Create(ctx context.Context, collaboratorID string, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	if _, err := s.CollaboratorRepository.GetByID(ctx, collaboratorID); err != nil {
		return request.RequestResponse{}, err
	}

	payload, err := request.ParsePayload(request.Type(req.Type), req.Payload)
	if err != nil {
		return request.RequestResponse{}, err
	}

	unlock := s.locks.Lock(collaboratorID)
	defer unlock()

	r := &request.Request{
		ID:             uuid.NewString(),
		CollaboratorID: collaboratorID,
		Type:           request.Type(req.Type),
		CreatedAt:      s.now(),
		Payload:        payload,
		Status:         request.StatusPending,
	}

	if err := s.RequestRepository.Create(ctx, r); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to store request: %w", err)
	}

	return request.NewRequestResponse(r), nil
}

// History implements request.RequestService.
func (s *RequestServiceImpl) History(ctx context.Context, collaboratorID string) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	out := make([]request.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, request.NewRequestResponse(r))
	}
	return out, nil
}
