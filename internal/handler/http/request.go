package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), id, createReq)
	if err != nil {
		slog.Error("CreateRequest service error", "error", err, "collaborator_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Request submitted", "request_id", created.ID, "type", created.Type)
	response.Created(w, "Request submitted", created)
}

// History implements RequestHandler.
func (h *RequestHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	id, err := collaboratorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := h.requestService.History(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
