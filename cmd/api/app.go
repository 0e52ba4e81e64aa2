package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/kimce-studio/workday-backend-go/internal/config"
	"github.com/kimce-studio/workday-backend-go/internal/domain/analytics"
	"github.com/kimce-studio/workday-backend-go/internal/fixtures"
	appHTTP "github.com/kimce-studio/workday-backend-go/internal/handler/http"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/cron"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/jwt"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/keylock"
	"github.com/kimce-studio/workday-backend-go/internal/repository/memory"
	analyticsService "github.com/kimce-studio/workday-backend-go/internal/service/analytics"
	approvalService "github.com/kimce-studio/workday-backend-go/internal/service/approval"
	attendanceService "github.com/kimce-studio/workday-backend-go/internal/service/attendance"
	authService "github.com/kimce-studio/workday-backend-go/internal/service/auth"
	calendarService "github.com/kimce-studio/workday-backend-go/internal/service/calendar"
	requestService "github.com/kimce-studio/workday-backend-go/internal/service/request"
	"github.com/kimce-studio/workday-backend-go/internal/service/report"
)

// app holds the wired application graph.
type app struct {
	cfg       *config.Config
	router    *chi.Mux
	scheduler *cron.Scheduler
	seed      fixtures.Services
	analytics analytics.AnalyticsService
}

func buildApp(cfg *config.Config) *app {
	store := memory.NewStore()
	collaboratorRepo := memory.NewCollaboratorRepository(store)
	entryRepo := memory.NewTimeEntryRepository(store)
	requestRepo := memory.NewRequestRepository(store)
	holidayRepo := memory.NewHolidayRepository(store)
	eventRepo := memory.NewEventRepository(store)

	locks := keylock.New()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	baselineHour, baselineMinute := cfg.Workday.BaselineCheckInTime()

	attendanceSvc := attendanceService.NewAttendanceService(entryRepo, collaboratorRepo, locks)
	requestSvc := requestService.NewRequestService(requestRepo, collaboratorRepo, locks)
	approvalSvc := approvalService.NewApprovalService(requestRepo, collaboratorRepo, entryRepo, holidayRepo, eventRepo, locks)
	calendarSvc := calendarService.NewCalendarService(eventRepo, holidayRepo, entryRepo, collaboratorRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(collaboratorRepo, entryRepo, requestRepo, baselineHour, baselineMinute)
	reportSvc := report.NewReportService(approvalSvc, collaboratorRepo)
	authSvc := authService.NewAuthService(collaboratorRepo, jwtService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(jwtService, authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewRequestHandler(requestSvc),
		appHTTP.NewAdminHandler(approvalSvc, reportSvc),
		appHTTP.NewCalendarHandler(calendarSvc),
		appHTTP.NewAnalyticsHandler(analyticsSvc),
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("pending-requests-refresh", cfg.Workday.PendingRefreshInterval, approvalSvc.IngestPending)

	return &app{
		cfg:       cfg,
		router:    router,
		scheduler: scheduler,
		seed: fixtures.Services{
			Collaborators: collaboratorRepo,
			Attendance:    attendanceSvc,
			Requests:      requestSvc,
			Approvals:     approvalSvc,
		},
		analytics: analyticsSvc,
	}
}
