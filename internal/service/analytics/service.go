package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/analytics"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
)

type AnalyticsServiceImpl struct {
	collaborator.CollaboratorRepository
	timesheet.TimeEntryRepository
	request.RequestRepository

	// baseline is the nominal start of day used by punctuality reports.
	baselineHour   int
	baselineMinute int
	now            func() time.Time
}

var _ analytics.AnalyticsService = (*AnalyticsServiceImpl)(nil)

func NewAnalyticsService(
	collaboratorRepo collaborator.CollaboratorRepository,
	entryRepo timesheet.TimeEntryRepository,
	requestRepo request.RequestRepository,
	baselineHour, baselineMinute int,
) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		CollaboratorRepository: collaboratorRepo,
		TimeEntryRepository:    entryRepo,
		RequestRepository:      requestRepo,
		baselineHour:           baselineHour,
		baselineMinute:         baselineMinute,
		now:                    time.Now,
	}
}

// DebtVsCredit implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) DebtVsCredit(ctx context.Context) (analytics.BalanceSummary, error) {
	collaborators, err := s.CollaboratorRepository.List(ctx)
	if err != nil {
		return analytics.BalanceSummary{}, fmt.Errorf("failed to list collaborators: %w", err)
	}

	// Surpluses and deficits accumulate separately per collaborator, so
	// the team can owe and be owed hours at the same time.
	var favor, deuda time.Duration
	for _, c := range collaborators {
		balance, err := s.CollaboratorRepository.Balance(ctx, c.ID)
		if err != nil {
			return analytics.BalanceSummary{}, err
		}
		if balance > 0 {
			favor += balance
		} else {
			deuda -= balance
		}
	}

	return analytics.BalanceSummary{
		HorasAFavor: favor.Hours(),
		HorasDeuda:  deuda.Hours(),
	}, nil
}

// HoursByProject implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) HoursByProject(ctx context.Context) (map[string]float64, error) {
	approved, err := s.RequestRepository.ListApproved(ctx, request.TypeSpecialActivity)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved activities: %w", err)
	}

	projectHours := make(map[string]float64)
	for _, r := range approved {
		payload, ok := r.Payload.(request.ActivityPayload)
		if !ok {
			continue
		}
		project := payload.Project
		if project == "" {
			project = "sin_proyecto"
		}
		projectHours[project] += payload.Hours
	}
	return projectHours, nil
}

// TeamWeeklyStats implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) TeamWeeklyStats(ctx context.Context, weekStart time.Time) (analytics.TeamWeeklyStats, error) {
	collaborators, err := s.CollaboratorRepository.List(ctx)
	if err != nil {
		return analytics.TeamWeeklyStats{}, fmt.Errorf("failed to list collaborators: %w", err)
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	asOf := s.now()

	var worked, expected time.Duration
	for _, c := range collaborators {
		entries, err := s.TimeEntryRepository.ListRange(ctx, c.ID, weekStart, weekEnd)
		if err != nil {
			return analytics.TeamWeeklyStats{}, fmt.Errorf("failed to list time entries: %w", err)
		}
		for _, entry := range entries {
			worked += entry.WorkedDuration(asOf)
		}
		expected += c.Schedule.ExpectedBetween(weekStart, weekEnd)
	}

	diff := (worked - expected).Hours()
	return analytics.TeamWeeklyStats{
		HorasTrabajadas: worked.Hours(),
		HorasEsperadas:  expected.Hours(),
		HorasExtra:      max(0, diff),
		HorasFaltantes:  max(0, -diff),
	}, nil
}

// PunctualityTrend implements analytics.AnalyticsService. Collaborators
// without any check-in are omitted.
func (s *AnalyticsServiceImpl) PunctualityTrend(ctx context.Context) ([]analytics.PunctualityTrendEntry, error) {
	collaborators, err := s.CollaboratorRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	var trend []analytics.PunctualityTrendEntry
	for _, c := range collaborators {
		entries, err := s.checkedInEntries(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}

		var total float64
		for _, entry := range entries {
			total += float64(entry.CheckIn.Hour()) + float64(entry.CheckIn.Minute())/60
		}
		trend = append(trend, analytics.PunctualityTrendEntry{
			Colaborador:         c.FullName,
			HoraPromedioEntrada: round2(total / float64(len(entries))),
		})
	}
	return trend, nil
}

// PunctualityRanking implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) PunctualityRanking(ctx context.Context) ([]analytics.PunctualityRankEntry, error) {
	collaborators, err := s.CollaboratorRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	var ranking []analytics.PunctualityRankEntry
	for _, c := range collaborators {
		entries, err := s.checkedInEntries(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}

		onTime := 0
		for _, entry := range entries {
			baseline := time.Date(
				entry.Day.Year(), entry.Day.Month(), entry.Day.Day(),
				s.baselineHour, s.baselineMinute, 0, 0,
				entry.CheckIn.Location(),
			)
			if !entry.CheckIn.After(baseline) {
				onTime++
			}
		}
		ranking = append(ranking, analytics.PunctualityRankEntry{
			Colaborador:           c.FullName,
			PorcentajePuntualidad: round2(float64(onTime) / float64(len(entries)) * 100),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].PorcentajePuntualidad > ranking[j].PorcentajePuntualidad
	})
	return ranking, nil
}

func (s *AnalyticsServiceImpl) checkedInEntries(ctx context.Context, collaboratorID string) ([]*timesheet.TimeEntry, error) {
	entries, err := s.TimeEntryRepository.ListByCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.CheckIn != nil {
			kept = append(kept, entry)
		}
	}
	return kept, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
