package request

import (
	"context"
	"testing"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/keylock"
	"github.com/kimce-studio/workday-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (*RequestServiceImpl, collaborator.Collaborator) {
	t.Helper()

	store := memory.NewStore()
	collaboratorRepo := memory.NewCollaboratorRepository(store)
	requestRepo := memory.NewRequestRepository(store)

	c, err := collaboratorRepo.Create(context.Background(), collaborator.Collaborator{
		FullName: "Ana López",
		Email:    "ana@example.com",
	})
	require.NoError(t, err)

	return NewRequestService(requestRepo, collaboratorRepo, keylock.New()), c
}

func TestRequestService_CreateStartsPending(t *testing.T) {
	svc, c := newFixture(t)

	created, err := svc.Create(context.Background(), c.ID, request.CreateRequestRequest{
		Type:    string(request.TypeOvertime),
		Payload: map[string]string{"horas": "2", "motivo": "Evento"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(request.StatusPending), created.Status)
	assert.Equal(t, "2", created.Payload["horas"])
}

func TestRequestService_CreateRejectsUnknownType(t *testing.T) {
	svc, c := newFixture(t)

	_, err := svc.Create(context.Background(), c.ID, request.CreateRequestRequest{
		Type:    "sabatico",
		Payload: map[string]string{},
	})
	require.Error(t, err)
}

func TestRequestService_CreateRejectsMalformedPayload(t *testing.T) {
	svc, c := newFixture(t)

	_, err := svc.Create(context.Background(), c.ID, request.CreateRequestRequest{
		Type:    string(request.TypeVacation),
		Payload: map[string]string{"inicio": "2026-03-09T00:00:00Z"},
	})
	require.Error(t, err)

	// Nothing was stored.
	history, err := svc.History(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRequestService_CreateUnknownCollaborator(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Create(context.Background(), "missing", request.CreateRequestRequest{
		Type:    string(request.TypeOvertime),
		Payload: map[string]string{"horas": "1"},
	})
	assert.ErrorIs(t, err, collaborator.ErrCollaboratorNotFound)
}

func TestRequestService_HistoryOrdersByCreation(t *testing.T) {
	svc, c := newFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, c.ID, request.CreateRequestRequest{
		Type:    string(request.TypeOvertime),
		Payload: map[string]string{"horas": "1"},
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, c.ID, request.CreateRequestRequest{
		Type: string(request.TypePermit),
		Payload: map[string]string{
			"inicio": "2026-03-09T00:00:00Z",
			"fin":    "2026-03-10T00:00:00Z",
		},
	})
	require.NoError(t, err)

	history, err := svc.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
}
