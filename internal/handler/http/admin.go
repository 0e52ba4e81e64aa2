package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/review"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/handler/http/response"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
	"github.com/kimce-studio/workday-backend-go/internal/service/report"
)

type AdminHandler interface {
	PendingRequests(w http.ResponseWriter, r *http.Request)
	ReviewRequest(w http.ResponseWriter, r *http.Request)
	AdjustHours(w http.ResponseWriter, r *http.Request)
	FixTimeEntry(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	ExportHistory(w http.ResponseWriter, r *http.Request)
	ExportHistoryXLSX(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	approvalService review.ApprovalService
	reportService   *report.ReportService
}

func NewAdminHandler(approvalService review.ApprovalService, reportService *report.ReportService) AdminHandler {
	return &AdminHandlerImpl{
		approvalService: approvalService,
		reportService:   reportService,
	}
}

// PendingRequests implements AdminHandler.
func (h *AdminHandlerImpl) PendingRequests(w http.ResponseWriter, r *http.Request) {
	pending, err := h.approvalService.PendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// ReviewRequest implements AdminHandler.
func (h *AdminHandlerImpl) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	var reviewReq request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("ReviewRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reviewReq.RequestID = chi.URLParam(r, "id")
	reviewReq.Reviewer = collaboratorName(r)

	reviewed, err := h.approvalService.Review(r.Context(), reviewReq)
	if err != nil {
		slog.Error("ReviewRequest service error", "error", err, "request_id", reviewReq.RequestID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviewed)
}

// AdjustHours implements AdminHandler.
func (h *AdminHandlerImpl) AdjustHours(w http.ResponseWriter, r *http.Request) {
	var adjustReq review.AdjustHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&adjustReq); err != nil {
		slog.Error("AdjustHours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.approvalService.AdjustHours(r.Context(), adjustReq); err != nil {
		slog.Error("AdjustHours service error", "error", err, "collaborator_id", adjustReq.CollaboratorID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Balance adjusted", nil)
}

// FixTimeEntry implements AdminHandler.
func (h *AdminHandlerImpl) FixTimeEntry(w http.ResponseWriter, r *http.Request) {
	var fixReq timesheet.FixEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&fixReq); err != nil {
		slog.Error("FixTimeEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.approvalService.FixTimeEntry(r.Context(), fixReq)
	if err != nil {
		slog.Error("FixTimeEntry service error", "error", err, "collaborator_id", fixReq.CollaboratorID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// CreateHoliday implements AdminHandler.
func (h *AdminHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var holidayReq holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&holidayReq); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.approvalService.CreateHoliday(r.Context(), holidayReq)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// RemoveHoliday implements AdminHandler.
func (h *AdminHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	day, valid := validator.IsValidDate(r.URL.Query().Get("day"))
	if name == "" || !valid {
		response.BadRequest(w, "name and day (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.approvalService.RemoveHoliday(r.Context(), name, day); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", nil)
}

// ListHolidays implements AdminHandler.
func (h *AdminHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.approvalService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// ExportHistory implements AdminHandler.
func (h *AdminHandlerImpl) ExportHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collaboratorID")

	rows, err := h.approvalService.ExportHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ExportHistoryXLSX implements AdminHandler.
func (h *AdminHandlerImpl) ExportHistoryXLSX(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collaboratorID")

	workbook, err := h.reportService.ExportXLSX(r.Context(), id)
	if err != nil {
		slog.Error("ExportHistoryXLSX service error", "error", err, "collaborator_id", id)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=historial-%s.xlsx", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
