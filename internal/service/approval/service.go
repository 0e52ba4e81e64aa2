package approval

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/calendar"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/review"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/keylock"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

type ApprovalServiceImpl struct {
	request.RequestRepository
	collaborator.CollaboratorRepository
	timesheet.TimeEntryRepository
	holiday.HolidayRepository
	calendar.EventRepository
	locks *keylock.KeyedMutex
	now   func() time.Time

	// pending is a rebuildable projection of the global pending queue,
	// never authoritative storage.
	pendingMu sync.RWMutex
	pending   []*request.Request
}

var _ review.ApprovalService = (*ApprovalServiceImpl)(nil)

func NewApprovalService(
	requestRepo request.RequestRepository,
	collaboratorRepo collaborator.CollaboratorRepository,
	entryRepo timesheet.TimeEntryRepository,
	holidayRepo holiday.HolidayRepository,
	eventRepo calendar.EventRepository,
	locks *keylock.KeyedMutex,
) *ApprovalServiceImpl {
	return &ApprovalServiceImpl{
		RequestRepository:      requestRepo,
		CollaboratorRepository: collaboratorRepo,
		TimeEntryRepository:    entryRepo,
		HolidayRepository:      holidayRepo,
		EventRepository:        eventRepo,
		locks:                  locks,
		now:                    time.Now,
	}
}

// IngestPending implements review.ApprovalService.
func (s *ApprovalServiceImpl) IngestPending(ctx context.Context) error {
	pending, err := s.RequestRepository.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending requests: %w", err)
	}

	s.pendingMu.Lock()
	s.pending = pending
	s.pendingMu.Unlock()
	return nil
}

// PendingRequests implements review.ApprovalService.
func (s *ApprovalServiceImpl) PendingRequests(ctx context.Context) ([]request.RequestResponse, error) {
	if err := s.IngestPending(ctx); err != nil {
		return nil, err
	}

	s.pendingMu.RLock()
	defer s.pendingMu.RUnlock()

	out := make([]request.RequestResponse, 0, len(s.pending))
	for _, r := range s.pending {
		out = append(out, request.NewRequestResponse(r))
	}
	return out, nil
}

// Review implements review.ApprovalService.
func (s *ApprovalServiceImpl) Review(ctx context.Context, req request.ReviewRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	target, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return request.RequestResponse{}, err
	}

	c, err := s.CollaboratorRepository.GetByID(ctx, target.CollaboratorID)
	if err != nil {
		return request.RequestResponse{}, err
	}

	// Status mutation and side effect run under the same per-collaborator
	// exclusion the attendance engine uses; the effect reads and writes
	// the same history.
	unlock := s.locks.Lock(target.CollaboratorID)
	defer unlock()

	// Re-read under the lock in case a concurrent review landed first.
	target, err = s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return request.RequestResponse{}, err
	}

	switch req.Action {
	case request.ActionApprove:
		// The effect is validated before any mutation so a failing review
		// leaves no partial state.
		effect, err := s.approvalEffect(target, c)
		if err != nil {
			return request.RequestResponse{}, err
		}
		if err := target.Approve(req.Reviewer); err != nil {
			return request.RequestResponse{}, err
		}
		if err := s.RequestRepository.Update(ctx, target); err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to update request: %w", err)
		}
		if err := effect(ctx); err != nil {
			return request.RequestResponse{}, err
		}

	case request.ActionReject:
		if err := target.Reject(req.Reviewer, req.Comment); err != nil {
			return request.RequestResponse{}, err
		}
		if err := s.RequestRepository.Update(ctx, target); err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to update request: %w", err)
		}

	case request.ActionCorrection:
		if err := target.AskCorrection(req.Reviewer, req.Comment); err != nil {
			return request.RequestResponse{}, err
		}
		if err := s.RequestRepository.Update(ctx, target); err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to update request: %w", err)
		}

	default:
		return request.RequestResponse{}, request.ErrInvalidReviewAction
	}

	slog.Info("Request reviewed",
		"request_id", target.ID,
		"collaborator_id", target.CollaboratorID,
		"action", req.Action,
		"reviewer", req.Reviewer,
	)
	return request.NewRequestResponse(target), nil
}

// approvalEffect resolves the exactly-once side effect for an approved
// request. Payloads are validated at submission, so a type mismatch here
// means the record was tampered with out of band; it is reported as a
// malformed payload, never silently defaulted.
func (s *ApprovalServiceImpl) approvalEffect(r *request.Request, c collaborator.Collaborator) (func(ctx context.Context) error, error) {
	switch r.Type {
	case request.TypeOvertime:
		payload, ok := r.Payload.(request.HoursPayload)
		if !ok {
			return nil, request.ErrMalformedPayload
		}
		delta := time.Duration(payload.Hours * float64(time.Hour))
		return func(ctx context.Context) error {
			return s.CollaboratorRepository.AddToBalance(ctx, c.ID, delta)
		}, nil

	case request.TypeCreditUsage:
		payload, ok := r.Payload.(request.HoursPayload)
		if !ok {
			return nil, request.ErrMalformedPayload
		}
		delta := time.Duration(payload.Hours * float64(time.Hour))
		return func(ctx context.Context) error {
			return s.CollaboratorRepository.AddToBalance(ctx, c.ID, -delta)
		}, nil

	case request.TypeVacation, request.TypeCompDay, request.TypePermit:
		payload, ok := r.Payload.(request.TimeOffPayload)
		if !ok {
			return nil, request.ErrMalformedPayload
		}
		event := calendar.Event{
			Title:          fmt.Sprintf("%s - %s", r.Type.Title(), c.FullName),
			Start:          payload.Start,
			End:            payload.End,
			CollaboratorID: c.ID,
			Metadata:       map[string]string{"tipo": string(r.Type)},
		}
		return func(ctx context.Context) error {
			return s.EventRepository.Append(ctx, event)
		}, nil

	case request.TypeSpecialActivity:
		payload, ok := r.Payload.(request.ActivityPayload)
		if !ok {
			return nil, request.ErrMalformedPayload
		}
		event := calendar.Event{
			Title:          fmt.Sprintf("Actividad %s - %s", payload.Activity, c.FullName),
			Start:          payload.Start,
			End:            payload.End,
			CollaboratorID: c.ID,
			Metadata:       payload.Raw(),
		}
		return func(ctx context.Context) error {
			return s.EventRepository.Append(ctx, event)
		}, nil
	}

	return nil, request.ErrUnknownType
}

// AdjustHours implements review.ApprovalService.
func (s *ApprovalServiceImpl) AdjustHours(ctx context.Context, req review.AdjustHoursRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	unlock := s.locks.Lock(req.CollaboratorID)
	defer unlock()

	delta := time.Duration(req.DeltaHours * float64(time.Hour))
	if err := s.CollaboratorRepository.AddToBalance(ctx, req.CollaboratorID, delta); err != nil {
		return err
	}

	slog.Info("Hours balance adjusted",
		"collaborator_id", req.CollaboratorID,
		"delta_hours", req.DeltaHours,
		"reason", req.Reason,
	)
	return nil
}

// FixTimeEntry implements review.ApprovalService. The replacement entry
// overwrites the same-day entry outright.
func (s *ApprovalServiceImpl) FixTimeEntry(ctx context.Context, req timesheet.FixEntryRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if _, err := s.CollaboratorRepository.GetByID(ctx, req.CollaboratorID); err != nil {
		return timesheet.EntryResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Day)
	entry := timesheet.NewTimeEntry(req.CollaboratorID, day)
	entry.Notes = req.Notes
	if req.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*req.CheckIn)
		entry.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		entry.CheckOut = &t
	}
	for _, b := range req.Breaks {
		start, _ := validator.IsValidDateTime(b.Start)
		if b.End == "" {
			entry.OpenBreak = &start
			continue
		}
		end, _ := validator.IsValidDateTime(b.End)
		entry.Breaks = append(entry.Breaks, timesheet.BreakInterval{Start: start, End: end})
	}

	unlock := s.locks.Lock(req.CollaboratorID)
	defer unlock()

	if err := s.TimeEntryRepository.Upsert(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to store time entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry, s.now()), nil
}

// ExportHistory implements review.ApprovalService.
func (s *ApprovalServiceImpl) ExportHistory(ctx context.Context, collaboratorID string) ([]timesheet.ExportRow, error) {
	entries, err := s.TimeEntryRepository.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	asOf := s.now()
	rows := make([]timesheet.ExportRow, 0, len(entries))
	for _, entry := range entries {
		row := timesheet.ExportRow{
			Dia:   timesheet.DayKey(entry.Day),
			Horas: fmt.Sprintf("%.2f", entry.WorkedDuration(asOf).Hours()),
		}
		if entry.CheckIn != nil {
			row.Entrada = entry.CheckIn.Format(time.RFC3339)
		}
		if entry.CheckOut != nil {
			row.Salida = entry.CheckOut.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CreateHoliday implements review.ApprovalService.
func (s *ApprovalServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := holiday.Holiday{
		Name:          req.Name,
		Day:           req.ParsedDay(),
		Paid:          req.Paid,
		Compensable:   req.Compensable,
		Collaborators: req.Collaborators,
	}
	if err := s.HolidayRepository.Create(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to store holiday: %w", err)
	}
	return holiday.NewHolidayResponse(h), nil
}

// RemoveHoliday implements review.ApprovalService.
func (s *ApprovalServiceImpl) RemoveHoliday(ctx context.Context, name string, day time.Time) error {
	return s.HolidayRepository.Remove(ctx, name, day)
}

// ListHolidays implements review.ApprovalService.
func (s *ApprovalServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holiday.NewHolidayResponse(h))
	}
	return out, nil
}
