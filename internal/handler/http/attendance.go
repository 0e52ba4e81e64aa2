package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/handler/http/response"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Annotate(w http.ResponseWriter, r *http.Request)
	Availability(w http.ResponseWriter, r *http.Request)
	WeekSummary(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService timesheet.AttendanceService
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService timesheet.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		now:               time.Now,
	}
}

func (h *AttendanceHandlerImpl) mark(w http.ResponseWriter, r *http.Request, name string, call func(id string, req timesheet.MarkRequest) (timesheet.EntryResponse, error)) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var markReq timesheet.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error(name+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := call(id, markReq)
	if err != nil {
		slog.Error(name+" service error", "error", err, "collaborator_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "CheckIn", func(id string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
		return h.attendanceService.CheckIn(r.Context(), id, req)
	})
}

// StartBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "StartBreak", func(id string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
		return h.attendanceService.StartBreak(r.Context(), id, req)
	})
}

// EndBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "EndBreak", func(id string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
		return h.attendanceService.EndBreak(r.Context(), id, req)
	})
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "CheckOut", func(id string, req timesheet.MarkRequest) (timesheet.EntryResponse, error) {
		return h.attendanceService.CheckOut(r.Context(), id, req)
	})
}

// Annotate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Annotate(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var annotateReq timesheet.AnnotateRequest
	if err := json.NewDecoder(r.Body).Decode(&annotateReq); err != nil {
		slog.Error("Annotate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.attendanceService.Annotate(r.Context(), id, annotateReq)
	if err != nil {
		slog.Error("Annotate service error", "error", err, "collaborator_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Availability implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	day := h.now()
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, valid := validator.IsValidDate(raw)
		if !valid {
			response.BadRequest(w, "day must be YYYY-MM-DD", nil)
			return
		}
		day = parsed
	}

	availability, err := h.attendanceService.ActionAvailability(r.Context(), id, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, availability)
}

// WeekSummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) WeekSummary(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	weekStart, ok := weekStartParam(w, r, h.now)
	if !ok {
		return
	}

	summary, err := h.attendanceService.WeekSummary(r.Context(), id, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	weeks, err := h.attendanceService.AggregatedHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, weeks)
}

// Balance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	overview, err := h.attendanceService.BalanceOverview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// weekStartParam resolves the week_start query parameter, defaulting to the
// Monday of the current week.
func weekStartParam(w http.ResponseWriter, r *http.Request, now func() time.Time) (time.Time, bool) {
	if raw := r.URL.Query().Get("week_start"); raw != "" {
		parsed, valid := validator.IsValidDate(raw)
		if !valid {
			response.BadRequest(w, "week_start must be YYYY-MM-DD", nil)
			return time.Time{}, false
		}
		return parsed, true
	}

	today := now()
	offset := (int(today.Weekday()) + 6) % 7
	monday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).AddDate(0, 0, -offset)
	return monday, true
}
