package request

import (
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Type    string            `json:"type"`
	Payload map[string]string `json:"payload"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	types := make([]string, 0, len(Types()))
	for _, t := range Types() {
		types = append(types, string(t))
	}
	if !validator.IsInSlice(r.Type, types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + joined(types),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Review actions accepted by the approval engine.
const (
	ActionApprove    = "approve"
	ActionReject     = "reject"
	ActionCorrection = "correction"
)

type ReviewRequest struct {
	RequestID string `json:"-"`
	Action    string `json:"action"`
	Reviewer  string `json:"-"`
	Comment   string `json:"comment,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if !validator.IsInSlice(r.Action, []string{ActionApprove, ActionReject, ActionCorrection}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: approve, reject, correction",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID             string            `json:"id"`
	CollaboratorID string            `json:"collaborator_id"`
	Type           string            `json:"type"`
	Status         string            `json:"status"`
	Payload        map[string]string `json:"payload"`
	Reviewer       string            `json:"reviewer,omitempty"`
	Comments       []string          `json:"comments,omitempty"`
	CreatedAt      string            `json:"created_at"`
}

func NewRequestResponse(r *Request) RequestResponse {
	resp := RequestResponse{
		ID:             r.ID,
		CollaboratorID: r.CollaboratorID,
		Type:           string(r.Type),
		Status:         string(r.Status),
		Reviewer:       r.Reviewer,
		Comments:       r.Comments,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
	if r.Payload != nil {
		resp.Payload = r.Payload.Raw()
	}
	return resp
}

func joined(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}
