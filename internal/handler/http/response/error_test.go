package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kimce-studio/workday-backend-go/internal/domain/auth"
	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrAdminRequired, http.StatusForbidden},
		{collaborator.ErrCollaboratorNotFound, http.StatusNotFound},
		{collaborator.ErrEmailExists, http.StatusConflict},
		{timesheet.ErrAlreadyCheckedIn, http.StatusConflict},
		{timesheet.ErrNotCheckedIn, http.StatusConflict},
		{timesheet.ErrBreakAlreadyOpen, http.StatusConflict},
		{timesheet.ErrNoOpenBreak, http.StatusConflict},
		{timesheet.ErrDayClosed, http.StatusConflict},
		{timesheet.ErrAlreadyCheckedOut, http.StatusConflict},
		{timesheet.ErrEntryNotFound, http.StatusNotFound},
		{request.ErrRequestNotFound, http.StatusNotFound},
		{request.ErrUnknownType, http.StatusUnprocessableEntity},
		{request.ErrMalformedPayload, http.StatusUnprocessableEntity},
		{request.ErrAlreadyProcessed, http.StatusConflict},
		{request.ErrInvalidReviewAction, http.StatusBadRequest},
		{request.ErrCommentRequired, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		HandleError(w, c.err)
		assert.Equal(t, c.want, w.Code, "error %v", c.err)
	}
}

func TestHandleError_ValidationErrorsCarryFieldDetails(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, validator.ValidationErrors{
		{Field: "horas", Message: "horas is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "horas is required", body.Error.Details["horas"])
}

func TestHandleError_WrappedSentinelsStillMap(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.Join(errors.New("context"), timesheet.ErrDayClosed))
	assert.Equal(t, http.StatusConflict, w.Code)
}
