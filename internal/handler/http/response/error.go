package response

import (
	"errors"
	"net/http"

	"github.com/kimce-studio/workday-backend-go/internal/domain/auth"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/holiday"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Collaborator domain errors
	case errors.Is(err, collaborator.ErrCollaboratorNotFound):
		NotFound(w, "Collaborator not found")
	case errors.Is(err, collaborator.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Timesheet flow errors
	case errors.Is(err, timesheet.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this day")
	case errors.Is(err, timesheet.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded for this day")
	case errors.Is(err, timesheet.ErrBreakAlreadyOpen):
		Conflict(w, "A break is already open")
	case errors.Is(err, timesheet.ErrNoOpenBreak):
		Conflict(w, "No open break to close")
	case errors.Is(err, timesheet.ErrDayClosed):
		Conflict(w, "The day is already closed")
	case errors.Is(err, timesheet.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for this day")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")

	// Request workflow errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrUnknownType):
		UnprocessableEntity(w, "Unknown request type")
	case errors.Is(err, request.ErrMalformedPayload):
		UnprocessableEntity(w, "Malformed request payload")
	case errors.Is(err, request.ErrAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, request.ErrInvalidReviewAction):
		BadRequest(w, "Invalid review action", nil)
	case errors.Is(err, request.ErrCommentRequired):
		UnprocessableEntity(w, "A comment is required for this action")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
