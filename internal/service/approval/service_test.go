package approval

import (
	"context"
	"testing"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/review"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/keylock"
	"github.com/kimce-studio/workday-backend-go/internal/repository/memory"
	requestService "github.com/kimce-studio/workday-backend-go/internal/service/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type approvalFixture struct {
	svc          *ApprovalServiceImpl
	requests     *requestService.RequestServiceImpl
	collabs      *memory.CollaboratorRepository
	events       *memory.EventRepository
	collaborator collaborator.Collaborator
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()

	store := memory.NewStore()
	collaboratorRepo := memory.NewCollaboratorRepository(store)
	entryRepo := memory.NewTimeEntryRepository(store)
	requestRepo := memory.NewRequestRepository(store)
	holidayRepo := memory.NewHolidayRepository(store)
	eventRepo := memory.NewEventRepository(store)
	locks := keylock.New()

	c, err := collaboratorRepo.Create(context.Background(), collaborator.Collaborator{
		FullName: "Luis García",
		Email:    "luis@example.com",
	})
	require.NoError(t, err)

	return &approvalFixture{
		svc:          NewApprovalService(requestRepo, collaboratorRepo, entryRepo, holidayRepo, eventRepo, locks),
		requests:     requestService.NewRequestService(requestRepo, collaboratorRepo, locks),
		collabs:      collaboratorRepo,
		events:       eventRepo,
		collaborator: c,
	}
}

func (f *approvalFixture) submit(t *testing.T, typ request.Type, payload map[string]string) request.RequestResponse {
	t.Helper()
	created, err := f.requests.Create(context.Background(), f.collaborator.ID, request.CreateRequestRequest{
		Type:    string(typ),
		Payload: payload,
	})
	require.NoError(t, err)
	return created
}

func TestApprovalService_ApproveOvertimeAddsBalance(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	created := f.submit(t, request.TypeOvertime, map[string]string{"horas": "2", "motivo": "Evento"})

	reviewed, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionApprove,
		Reviewer:  "RRHH",
	})
	require.NoError(t, err)
	assert.Equal(t, string(request.StatusApproved), reviewed.Status)
	assert.Equal(t, "RRHH", reviewed.Reviewer)

	balance, err := f.collabs.Balance(ctx, f.collaborator.ID)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, balance)
}

func TestApprovalService_ApproveCreditUsageSubtractsBalance(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	require.NoError(t, f.collabs.AddToBalance(ctx, f.collaborator.ID, 5*time.Hour))

	created := f.submit(t, request.TypeCreditUsage, map[string]string{"horas": "3"})
	_, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionApprove,
		Reviewer:  "RRHH",
	})
	require.NoError(t, err)

	balance, err := f.collabs.Balance(ctx, f.collaborator.ID)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, balance)
}

func TestApprovalService_ApproveVacationCreatesEvent(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	created := f.submit(t, request.TypeVacation, map[string]string{
		"inicio": "2026-03-09T00:00:00Z",
		"fin":    "2026-03-13T00:00:00Z",
	})
	_, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionApprove,
		Reviewer:  "RRHH",
	})
	require.NoError(t, err)

	events, err := f.events.ListByCollaborator(ctx, f.collaborator.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Vacaciones - Luis García", events[0].Title)
	assert.Equal(t, "vacaciones", events[0].Metadata["tipo"])
}

func TestApprovalService_ApproveSpecialActivityCreatesEvent(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	created := f.submit(t, request.TypeSpecialActivity, map[string]string{
		"inicio":    "2026-03-09T10:00:00Z",
		"fin":       "2026-03-09T14:00:00Z",
		"actividad": "Workshop",
		"proyecto":  "interno",
	})
	_, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionApprove,
		Reviewer:  "RRHH",
	})
	require.NoError(t, err)

	events, err := f.events.ListByCollaborator(ctx, f.collaborator.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Actividad Workshop - Luis García", events[0].Title)
	assert.Equal(t, "interno", events[0].Metadata["proyecto"])
}

func TestApprovalService_RejectRequiresComment(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	created := f.submit(t, request.TypeOvertime, map[string]string{"horas": "2"})

	_, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionReject,
		Reviewer:  "RRHH",
	})
	require.ErrorIs(t, err, request.ErrCommentRequired)

	// The request is untouched and no balance moved.
	pending, err := f.svc.PendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, string(request.StatusPending), pending[0].Status)

	balance, err := f.collabs.Balance(ctx, f.collaborator.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), balance)
}

func TestApprovalService_InvalidActionFailsWholeReview(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	created := f.submit(t, request.TypeOvertime, map[string]string{"horas": "2"})

	_, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    "escalate",
		Reviewer:  "RRHH",
	})
	require.Error(t, err)

	pending, err := f.svc.PendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestApprovalService_ReviewIsOneShot(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	created := f.submit(t, request.TypeOvertime, map[string]string{"horas": "2"})
	_, err := f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionApprove,
		Reviewer:  "RRHH",
	})
	require.NoError(t, err)

	_, err = f.svc.Review(ctx, request.ReviewRequest{
		RequestID: created.ID,
		Action:    request.ActionApprove,
		Reviewer:  "RRHH",
	})
	require.ErrorIs(t, err, request.ErrAlreadyProcessed)

	// The balance was credited exactly once.
	balance, err := f.collabs.Balance(ctx, f.collaborator.ID)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, balance)
}

func TestApprovalService_PendingQueueIsRebuildable(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	f.submit(t, request.TypeOvertime, map[string]string{"horas": "1"})
	f.submit(t, request.TypePermit, map[string]string{
		"inicio": "2026-03-09T00:00:00Z",
		"fin":    "2026-03-10T00:00:00Z",
	})

	require.NoError(t, f.svc.IngestPending(ctx))
	pending, err := f.svc.PendingRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// Rebuilding again yields the same queue.
	require.NoError(t, f.svc.IngestPending(ctx))
	again, err := f.svc.PendingRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, again)
}

func TestApprovalService_AdjustHours(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AdjustHours(ctx, review.AdjustHoursRequest{
		CollaboratorID: f.collaborator.ID,
		DeltaHours:     -1.5,
		Reason:         "ajuste manual",
	}))

	balance, err := f.collabs.Balance(ctx, f.collaborator.ID)
	require.NoError(t, err)
	assert.Equal(t, -90*time.Minute, balance)

	err = f.svc.AdjustHours(ctx, review.AdjustHoursRequest{CollaboratorID: f.collaborator.ID})
	require.Error(t, err, "zero delta must be rejected")
}

func TestApprovalService_FixTimeEntryReplacesDay(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	in := "2026-03-02T09:00:00Z"
	out := "2026-03-02T17:00:00Z"
	entry, err := f.svc.FixTimeEntry(ctx, timesheet.FixEntryRequest{
		CollaboratorID: f.collaborator.ID,
		Day:            "2026-03-02",
		CheckIn:        &in,
		CheckOut:       &out,
		Notes:          []string{"corregido por RRHH"},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, entry.WorkedHours)

	// A second fix replaces the first outright.
	out2 := "2026-03-02T13:00:00Z"
	entry, err = f.svc.FixTimeEntry(ctx, timesheet.FixEntryRequest{
		CollaboratorID: f.collaborator.ID,
		Day:            "2026-03-02",
		CheckIn:        &in,
		CheckOut:       &out2,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, entry.WorkedHours)
	assert.Empty(t, entry.Notes)
}

func TestApprovalService_ExportHistory(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	in := "2026-03-02T09:00:00Z"
	out := "2026-03-02T17:30:00Z"
	_, err := f.svc.FixTimeEntry(ctx, timesheet.FixEntryRequest{
		CollaboratorID: f.collaborator.ID,
		Day:            "2026-03-02",
		CheckIn:        &in,
		CheckOut:       &out,
	})
	require.NoError(t, err)

	rows, err := f.svc.ExportHistory(ctx, f.collaborator.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-02", rows[0].Dia)
	assert.Equal(t, "8.50", rows[0].Horas)
}
