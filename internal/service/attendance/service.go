package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/keylock"
)

type AttendanceServiceImpl struct {
	timesheet.TimeEntryRepository
	collaborator.CollaboratorRepository
	locks *keylock.KeyedMutex
	now   func() time.Time
}

var _ timesheet.AttendanceService = (*AttendanceServiceImpl)(nil)

func NewAttendanceService(
	entryRepo timesheet.TimeEntryRepository,
	collaboratorRepo collaborator.CollaboratorRepository,
	locks *keylock.KeyedMutex,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		TimeEntryRepository:    entryRepo,
		CollaboratorRepository: collaboratorRepo,
		locks:                  locks,
		now:                    time.Now,
	}
}

// CheckIn implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, collaboratorID string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
	return s.mark(ctx, collaboratorID, req, func(entry *timesheet.TimeEntry, ts time.Time) error {
		if entry.CheckIn != nil {
			return timesheet.ErrAlreadyCheckedIn
		}
		entry.CheckIn = &ts
		return nil
	})
}

// StartBreak implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, collaboratorID string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
	return s.mark(ctx, collaboratorID, req, func(entry *timesheet.TimeEntry, ts time.Time) error {
		if entry.IsClosed() {
			return timesheet.ErrDayClosed
		}
		if entry.CheckIn == nil {
			return timesheet.ErrNotCheckedIn
		}
		if entry.OpenBreak != nil {
			return timesheet.ErrBreakAlreadyOpen
		}
		entry.OpenBreak = &ts
		return nil
	})
}

// EndBreak implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, collaboratorID string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
	return s.mark(ctx, collaboratorID, req, func(entry *timesheet.TimeEntry, ts time.Time) error {
		if entry.IsClosed() {
			return timesheet.ErrDayClosed
		}
		if entry.OpenBreak == nil {
			return timesheet.ErrNoOpenBreak
		}
		entry.Breaks = append(entry.Breaks, timesheet.BreakInterval{Start: *entry.OpenBreak, End: ts})
		entry.OpenBreak = nil
		return nil
	})
}

// CheckOut implements timesheet.AttendanceService. A break still open at
// check-out is left open; it keeps counting as unpaid time capped at the
// check-out instant.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, collaboratorID string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
	return s.mark(ctx, collaboratorID, req, func(entry *timesheet.TimeEntry, ts time.Time) error {
		if entry.CheckIn == nil {
			return timesheet.ErrNotCheckedIn
		}
		if entry.CheckOut != nil {
			return timesheet.ErrAlreadyCheckedOut
		}
		entry.CheckOut = &ts
		return nil
	})
}

// mark runs one clock transition under the collaborator's lock. The entry
// is created lazily, the note is appended regardless of whether the
// transition succeeds, and on a flow violation everything except the note
// stays unchanged.
func (s *AttendanceServiceImpl) mark(ctx context.Context, collaboratorID string, req timesheet.MarkRequest, transition func(entry *timesheet.TimeEntry, ts time.Time) error) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}
	ts := req.ParsedTimestamp()

	unlock := s.locks.Lock(collaboratorID)
	defer unlock()

	entry, err := s.entryForDay(ctx, collaboratorID, ts)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if req.Note != "" {
		entry.AddNote(req.Note)
	}

	transitionErr := transition(entry, ts)

	if err := s.TimeEntryRepository.Upsert(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to store time entry: %w", err)
	}

	if transitionErr != nil {
		return timesheet.EntryResponse{}, transitionErr
	}

	return timesheet.NewEntryResponse(entry, s.now()), nil
}

// entryForDay fetches the day's entry, creating it lazily on first use.
func (s *AttendanceServiceImpl) entryForDay(ctx context.Context, collaboratorID string, ts time.Time) (*timesheet.TimeEntry, error) {
	entry, err := s.TimeEntryRepository.GetByDay(ctx, collaboratorID, ts)
	if err == nil {
		return entry, nil
	}
	if errors.Is(err, timesheet.ErrEntryNotFound) {
		return timesheet.NewTimeEntry(collaboratorID, ts), nil
	}
	return nil, fmt.Errorf("failed to get time entry: %w", err)
}

// Annotate implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) Annotate(ctx context.Context, collaboratorID string, req timesheet.AnnotateRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}
	day, _ := time.Parse("2006-01-02", req.Day)

	unlock := s.locks.Lock(collaboratorID)
	defer unlock()

	entry, err := s.entryForDay(ctx, collaboratorID, day)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry.AddNote(req.Note)
	if err := s.TimeEntryRepository.Upsert(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to store time entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry, s.now()), nil
}

// ActionAvailability implements timesheet.AttendanceService. With no entry
// for the day only check-in is allowed.
func (s *AttendanceServiceImpl) ActionAvailability(ctx context.Context, collaboratorID string, day time.Time) (timesheet.AvailabilityResponse, error) {
	entry, err := s.TimeEntryRepository.GetByDay(ctx, collaboratorID, day)
	if errors.Is(err, timesheet.ErrEntryNotFound) {
		return timesheet.AvailabilityResponse{CanCheckIn: true}, nil
	}
	if err != nil {
		return timesheet.AvailabilityResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	locked := entry.IsClosed()
	return timesheet.AvailabilityResponse{
		CanCheckIn:    entry.CheckIn == nil,
		CanStartBreak: entry.CheckIn != nil && entry.OpenBreak == nil && !locked,
		CanEndBreak:   entry.OpenBreak != nil && !locked,
		CanCheckOut:   entry.CheckIn != nil && !locked,
		Locked:        locked,
	}, nil
}

// WeekSummary implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) WeekSummary(ctx context.Context, collaboratorID string, weekStart time.Time) (timesheet.WeekSummaryResponse, error) {
	c, err := s.CollaboratorRepository.GetByID(ctx, collaboratorID)
	if err != nil {
		return timesheet.WeekSummaryResponse{}, err
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	entries, err := s.TimeEntryRepository.ListRange(ctx, collaboratorID, weekStart, weekEnd)
	if err != nil {
		return timesheet.WeekSummaryResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	asOf := s.now()
	var worked time.Duration
	for _, entry := range entries {
		worked += entry.WorkedDuration(asOf)
	}
	expected := c.Schedule.ExpectedBetween(weekStart, weekEnd)

	diff := (worked - expected).Hours()
	summary := timesheet.WeekSummaryResponse{
		HorasTrabajadas: worked.Hours(),
		HorasEsperadas:  expected.Hours(),
		HorasExtra:      max(0, diff),
		HorasFaltantes:  max(0, -diff),
		HorasAFavor:     max(0, diff),
		Indicator:       "rojo",
	}
	if worked >= expected {
		summary.Indicator = "verde"
	}
	return summary, nil
}

// AggregatedHistory implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) AggregatedHistory(ctx context.Context, collaboratorID string) (map[string]timesheet.WeekTotals, error) {
	c, err := s.CollaboratorRepository.GetByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	entries, err := s.TimeEntryRepository.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	asOf := s.now()
	grouped := make(map[string]timesheet.WeekTotals)
	for _, entry := range entries {
		year, week := entry.Day.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)

		totals := grouped[key]
		totals.Trabajadas += entry.WorkedDuration(asOf).Hours()
		totals.Esperadas += c.Schedule[entry.Day.Weekday()].Hours()
		grouped[key] = totals
	}
	return grouped, nil
}

// BalanceOverview implements timesheet.AttendanceService.
func (s *AttendanceServiceImpl) BalanceOverview(ctx context.Context, collaboratorID string) (timesheet.BalanceOverviewResponse, error) {
	balance, err := s.CollaboratorRepository.Balance(ctx, collaboratorID)
	if err != nil {
		return timesheet.BalanceOverviewResponse{}, err
	}

	hours := balance.Hours()
	return timesheet.BalanceOverviewResponse{
		HorasAFavor: max(0, hours),
		HorasDeuda:  max(0, -hours),
	}, nil
}
