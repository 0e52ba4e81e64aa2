package http

import (
	"net/http"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/analytics"
	"github.com/kimce-studio/workday-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	Projects(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Punctuality(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
	now              func() time.Time
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// Balance implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.DebtVsCredit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Projects implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Projects(w http.ResponseWriter, r *http.Request) {
	hours, err := h.analyticsService.HoursByProject(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

// Weekly implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	weekStart, ok := weekStartParam(w, r, h.now)
	if !ok {
		return
	}

	stats, err := h.analyticsService.TeamWeeklyStats(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Punctuality implements AnalyticsHandler. Returns the average check-in
// trend and the on-time ranking together.
func (h *AnalyticsHandlerImpl) Punctuality(w http.ResponseWriter, r *http.Request) {
	trend, err := h.analyticsService.PunctualityTrend(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	ranking, err := h.analyticsService.PunctualityRanking(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"tendencia": trend,
		"ranking":   ranking,
	})
}
