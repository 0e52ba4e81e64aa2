package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/calendar"
	"github.com/kimce-studio/workday-backend-go/internal/handler/http/response"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

type CalendarHandler interface {
	Month(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	TeamLoad(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
	now             func() time.Time
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{
		calendarService: calendarService,
		now:             time.Now,
	}
}

// Month implements CalendarHandler. Defaults to the current month.
func (h *CalendarHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	month := today.Month()
	year := today.Year()

	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			response.BadRequest(w, "month must be 1-12", nil)
			return
		}
		month = time.Month(m)
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			response.BadRequest(w, "year must be a positive integer", nil)
			return
		}
		year = y
	}

	events, err := h.calendarService.BuildMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// My implements CalendarHandler.
func (h *CalendarHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	events, err := h.calendarService.ByCollaborator(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// TeamLoad implements CalendarHandler. Defaults to today.
func (h *CalendarHandlerImpl) TeamLoad(w http.ResponseWriter, r *http.Request) {
	day := h.now()
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, valid := validator.IsValidDate(raw)
		if !valid {
			response.BadRequest(w, "day must be YYYY-MM-DD", nil)
			return
		}
		day = parsed
	}

	load, err := h.calendarService.TeamLoad(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, load)
}
