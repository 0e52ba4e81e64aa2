package review

import (
	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

// AdjustHoursRequest is a compensating manual balance adjustment. The
// approval engine never reverses an applied side effect on its own.
type AdjustHoursRequest struct {
	CollaboratorID string  `json:"collaborator_id"`
	DeltaHours     float64 `json:"delta_hours"`
	Reason         string  `json:"reason,omitempty"`
}

func (r *AdjustHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CollaboratorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "collaborator_id",
			Message: "collaborator_id is required",
		})
	}

	if r.DeltaHours == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delta_hours",
			Message: "delta_hours must be nonzero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
