package holiday

import (
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name          string   `json:"name"`
	Day           string   `json:"day"` // YYYY-MM-DD
	Paid          bool     `json:"paid"`
	Compensable   bool     `json:"compensable"`
	Collaborators []string `json:"collaborators,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Day); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	Name          string   `json:"name"`
	Day           string   `json:"day"`
	Paid          bool     `json:"paid"`
	Compensable   bool     `json:"compensable"`
	Collaborators []string `json:"collaborators,omitempty"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		Name:          h.Name,
		Day:           h.Day.Format("2006-01-02"),
		Paid:          h.Paid,
		Compensable:   h.Compensable,
		Collaborators: h.Collaborators,
	}
}

// ParsedDay returns the request day as a time.Time. Call Validate first.
func (r *CreateHolidayRequest) ParsedDay() time.Time {
	t, _ := validator.IsValidDate(r.Day)
	return t
}
