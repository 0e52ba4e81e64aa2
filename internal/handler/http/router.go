package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kimce-studio/workday-backend-go/internal/config"
	"github.com/kimce-studio/workday-backend-go/internal/handler/http/middleware"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	requestHandler RequestHandler,
	adminHandler AdminHandler,
	calendarHandler CalendarHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workday-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/break-start", attendanceHandler.StartBreak)
				r.Post("/break-end", attendanceHandler.EndBreak)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/notes", attendanceHandler.Annotate)
				r.Get("/availability", attendanceHandler.Availability)
				r.Get("/week-summary", attendanceHandler.WeekSummary)
				r.Get("/history", attendanceHandler.History)
				r.Get("/balance", attendanceHandler.Balance)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Create)
				r.Get("/", requestHandler.History)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", calendarHandler.Month)
				r.Get("/my", calendarHandler.My)
				r.Get("/team-load", calendarHandler.TeamLoad)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/requests", func(r chi.Router) {
					r.Get("/pending", adminHandler.PendingRequests)
					r.Post("/{id}/review", adminHandler.ReviewRequest)
				})

				r.Post("/adjust-hours", adminHandler.AdjustHours)
				r.Put("/time-entries", adminHandler.FixTimeEntry)

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", adminHandler.CreateHoliday)
					r.Get("/", adminHandler.ListHolidays)
					r.Delete("/", adminHandler.RemoveHoliday)
				})

				r.Route("/analytics", func(r chi.Router) {
					r.Get("/balance", analyticsHandler.Balance)
					r.Get("/projects", analyticsHandler.Projects)
					r.Get("/weekly", analyticsHandler.Weekly)
					r.Get("/punctuality", analyticsHandler.Punctuality)
				})

				r.Route("/export", func(r chi.Router) {
					r.Get("/{collaboratorID}", adminHandler.ExportHistory)
					r.Get("/{collaboratorID}/xlsx", adminHandler.ExportHistoryXLSX)
				})
			})
		})
	})

	return r
}
