package timesheet

import (
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

// MarkRequest is the body shared by the four clock actions.
type MarkRequest struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if _, valid := validator.IsValidDateTime(r.Timestamp); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an ISO8601 instant",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedTimestamp returns the request timestamp as a time.Time. Call
// Validate first.
func (r *MarkRequest) ParsedTimestamp() time.Time {
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

// AnnotateRequest appends a free-text note to a day's entry.
type AnnotateRequest struct {
	Day  string `json:"day"` // YYYY-MM-DD
	Note string `json:"note"`
}

func (r *AnnotateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Day); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

type EntryResponse struct {
	CollaboratorID string          `json:"collaborator_id"`
	Day            string          `json:"day"`
	CheckIn        *string         `json:"check_in,omitempty"`
	CheckOut       *string         `json:"check_out,omitempty"`
	Breaks         []BreakResponse `json:"breaks,omitempty"`
	OpenBreak      *string         `json:"open_break,omitempty"`
	Notes          []string        `json:"notes,omitempty"`
	WorkedHours    float64         `json:"worked_hours"`
}

// NewEntryResponse renders an entry, evaluating the worked duration at asOf.
func NewEntryResponse(entry *TimeEntry, asOf time.Time) EntryResponse {
	resp := EntryResponse{
		CollaboratorID: entry.CollaboratorID,
		Day:            DayKey(entry.Day),
		Notes:          entry.Notes,
		WorkedHours:    entry.WorkedDuration(asOf).Hours(),
	}
	resp.CheckIn = formatInstant(entry.CheckIn)
	resp.CheckOut = formatInstant(entry.CheckOut)
	for _, b := range entry.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{
			Start: b.Start.Format(time.RFC3339),
			End:   b.End.Format(time.RFC3339),
		})
	}
	if entry.OpenBreak != nil {
		resp.OpenBreak = formatInstant(entry.OpenBreak)
		resp.Breaks = append(resp.Breaks, BreakResponse{Start: *resp.OpenBreak})
	}
	return resp
}

// AvailabilityResponse tells the UI which clock buttons to enable.
type AvailabilityResponse struct {
	CanCheckIn    bool `json:"can_check_in"`
	CanStartBreak bool `json:"can_start_break"`
	CanEndBreak   bool `json:"can_end_break"`
	CanCheckOut   bool `json:"can_check_out"`
	Locked        bool `json:"locked"`
}

// WeekSummaryResponse keeps the original Spanish field spellings on the wire.
type WeekSummaryResponse struct {
	HorasTrabajadas float64 `json:"horas_trabajadas"`
	HorasEsperadas  float64 `json:"horas_esperadas"`
	HorasExtra      float64 `json:"horas_extra"`
	HorasFaltantes  float64 `json:"horas_faltantes"`
	HorasAFavor     float64 `json:"horas_a_favor"`
	Indicator       string  `json:"indicador"` // "verde" when worked >= expected, else "rojo"
}

type BalanceOverviewResponse struct {
	HorasAFavor float64 `json:"horas_a_favor"`
	HorasDeuda  float64 `json:"horas_deuda"`
}

// WeekTotals is one row of the per-week aggregated history.
type WeekTotals struct {
	Trabajadas float64 `json:"trabajadas"`
	Esperadas  float64 `json:"esperadas"`
}

// FixEntryRequest is the administrative same-day replacement of an entry.
type FixEntryRequest struct {
	CollaboratorID string          `json:"collaborator_id"`
	Day            string          `json:"day"` // YYYY-MM-DD
	CheckIn        *string         `json:"check_in,omitempty"`
	CheckOut       *string         `json:"check_out,omitempty"`
	Breaks         []BreakResponse `json:"breaks,omitempty"`
	Notes          []string        `json:"notes,omitempty"`
}

func (r *FixEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CollaboratorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "collaborator_id",
			Message: "collaborator_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Day); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be in YYYY-MM-DD format",
		})
	}

	if r.CheckIn != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 instant",
			})
		}
	}

	if r.CheckOut != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 instant",
			})
		}
	}

	for _, b := range r.Breaks {
		if _, valid := validator.IsValidDateTime(b.Start); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "breaks",
				Message: "break start must be an ISO8601 instant",
			})
			break
		}
		if b.End != "" {
			if _, valid := validator.IsValidDateTime(b.End); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   "breaks",
					Message: "break end must be an ISO8601 instant",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExportRow is one CSV-shaped line of a collaborator's history.
type ExportRow struct {
	Dia     string `json:"dia"`
	Entrada string `json:"entrada"`
	Salida  string `json:"salida"`
	Horas   string `json:"horas"` // worked hours formatted to two decimals
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
