package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/calendar"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
)

type CalendarServiceImpl struct {
	calendar.EventRepository
	holiday.HolidayRepository
	timesheet.TimeEntryRepository
	collaborator.CollaboratorRepository
}

var _ calendar.CalendarService = (*CalendarServiceImpl)(nil)

func NewCalendarService(
	eventRepo calendar.EventRepository,
	holidayRepo holiday.HolidayRepository,
	entryRepo timesheet.TimeEntryRepository,
	collaboratorRepo collaborator.CollaboratorRepository,
) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		EventRepository:        eventRepo,
		HolidayRepository:      holidayRepo,
		TimeEntryRepository:    entryRepo,
		CollaboratorRepository: collaboratorRepo,
	}
}

// BuildMonth implements calendar.CalendarService. The view is recomputed
// from scratch on every call; the source collections are small and
// in-memory.
func (s *CalendarServiceImpl) BuildMonth(ctx context.Context, month time.Month, year int) ([]calendar.EventResponse, error) {
	events, err := s.EventRepository.ListMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	shifts, err := s.shiftEvents(ctx, month, year)
	if err != nil {
		return nil, err
	}
	events = append(events, shifts...)

	holidays, err := s.HolidayRepository.ListMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	for _, h := range holidays {
		events = append(events, holidayEvent(h))
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })

	out := make([]calendar.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, calendar.NewEventResponse(e))
	}
	return out, nil
}

// shiftEvents synthesizes one event per completed shift in the month.
// Entries missing either check-in or check-out do not appear.
func (s *CalendarServiceImpl) shiftEvents(ctx context.Context, month time.Month, year int) ([]calendar.Event, error) {
	collaborators, err := s.CollaboratorRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	var events []calendar.Event
	for _, c := range collaborators {
		entries, err := s.TimeEntryRepository.ListByCollaborator(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list time entries: %w", err)
		}
		for _, entry := range entries {
			if entry.Day.Month() != month || entry.Day.Year() != year {
				continue
			}
			if entry.CheckIn == nil || entry.CheckOut == nil {
				continue
			}
			events = append(events, calendar.Event{
				Title:          fmt.Sprintf("Jornada %s", c.FullName),
				Start:          *entry.CheckIn,
				End:            *entry.CheckOut,
				CollaboratorID: c.ID,
			})
		}
	}
	return events, nil
}

func holidayEvent(h holiday.Holiday) calendar.Event {
	dayStart := h.Day
	dayEnd := h.Day.AddDate(0, 0, 1).Add(-time.Second)
	return calendar.Event{
		Title: fmt.Sprintf("Feriado: %s", h.Name),
		Start: dayStart,
		End:   dayEnd,
		Metadata: map[string]string{
			"paid":        fmt.Sprintf("%t", h.Paid),
			"compensable": fmt.Sprintf("%t", h.Compensable),
		},
	}
}

// ByCollaborator implements calendar.CalendarService. Holidays scoped to
// an allow-list only show up for the collaborators they cover.
func (s *CalendarServiceImpl) ByCollaborator(ctx context.Context, collaboratorID string) ([]calendar.EventResponse, error) {
	events, err := s.EventRepository.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	for _, h := range holidays {
		if h.AppliesTo(collaboratorID) {
			events = append(events, holidayEvent(h))
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })

	out := make([]calendar.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, calendar.NewEventResponse(e))
	}
	return out, nil
}

// TeamLoad implements calendar.CalendarService.
func (s *CalendarServiceImpl) TeamLoad(ctx context.Context, day time.Time) (map[string]int, error) {
	collaborators, err := s.CollaboratorRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	load := make(map[string]int, len(collaborators))
	for _, c := range collaborators {
		load[c.ID] = 0
		if _, err := s.TimeEntryRepository.GetByDay(ctx, c.ID, day); err == nil {
			load[c.ID] = 1
		}
	}
	return load, nil
}
