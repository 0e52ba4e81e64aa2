package request

import (
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
)

// Payload is the typed content of a request. Each request type carries
// exactly one variant; the string-keyed form from the wire is validated and
// converted at submission time, not at approval time.
type Payload interface {
	isPayload()

	// Raw returns the original string-keyed form, kept because approved
	// special activities carry it as calendar event metadata.
	Raw() map[string]string
}

// TimeOffPayload backs vacation, compensatory day and permit requests.
type TimeOffPayload struct {
	Start time.Time
	End   time.Time
	raw   map[string]string
}

func (TimeOffPayload) isPayload()            {}
func (p TimeOffPayload) Raw() map[string]string { return p.raw }

// HoursPayload backs overtime and credit-usage requests.
type HoursPayload struct {
	Hours  float64
	Reason string
	raw    map[string]string
}

func (HoursPayload) isPayload()            {}
func (p HoursPayload) Raw() map[string]string { return p.raw }

// ActivityPayload backs special-activity requests.
type ActivityPayload struct {
	Activity string
	Project  string
	Hours    float64
	Start    time.Time
	End      time.Time
	raw      map[string]string
}

func (ActivityPayload) isPayload()            {}
func (p ActivityPayload) Raw() map[string]string { return p.raw }

// Recognized payload keys, type-dependent.
const (
	keyStart    = "inicio"
	keyEnd      = "fin"
	keyHours    = "horas"
	keyReason   = "motivo"
	keyActivity = "actividad"
	keyProject  = "proyecto"
)

// ParsePayload validates the string-keyed payload against the request type
// and returns the typed variant. A payload lacking its type-required keys
// is reported as field-level validation errors, never silently defaulted.
func ParsePayload(t Type, kv map[string]string) (Payload, error) {
	var errs validator.ValidationErrors

	switch {
	case t.IsTimeOff():
		start, end := parseSpan(kv, &errs)
		if len(errs) > 0 {
			return nil, errs
		}
		return TimeOffPayload{Start: start, End: end, raw: copyMap(kv)}, nil

	case t == TypeOvertime || t == TypeCreditUsage:
		hours, ok := validator.IsDecimal(kv[keyHours])
		if kv[keyHours] == "" {
			errs = append(errs, validator.ValidationError{
				Field:   keyHours,
				Message: keyHours + " is required",
			})
		} else if !ok || hours <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   keyHours,
				Message: keyHours + " must be a positive decimal",
			})
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return HoursPayload{Hours: hours, Reason: kv[keyReason], raw: copyMap(kv)}, nil

	case t == TypeSpecialActivity:
		start, end := parseSpan(kv, &errs)
		if validator.IsEmpty(kv[keyActivity]) {
			errs = append(errs, validator.ValidationError{
				Field:   keyActivity,
				Message: keyActivity + " is required",
			})
		}
		hours := 0.0
		if kv[keyHours] != "" {
			var ok bool
			hours, ok = validator.IsDecimal(kv[keyHours])
			if !ok {
				errs = append(errs, validator.ValidationError{
					Field:   keyHours,
					Message: keyHours + " must be a non-negative decimal",
				})
			}
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return ActivityPayload{
			Activity: kv[keyActivity],
			Project:  kv[keyProject],
			Hours:    hours,
			Start:    start,
			End:      end,
			raw:      copyMap(kv),
		}, nil
	}

	return nil, ErrUnknownType
}

func parseSpan(kv map[string]string, errs *validator.ValidationErrors) (start, end time.Time) {
	var ok bool
	if kv[keyStart] == "" {
		*errs = append(*errs, validator.ValidationError{
			Field:   keyStart,
			Message: keyStart + " is required",
		})
	} else if start, ok = validator.IsValidDateTime(kv[keyStart]); !ok {
		*errs = append(*errs, validator.ValidationError{
			Field:   keyStart,
			Message: keyStart + " must be an ISO8601 instant",
		})
	}

	if kv[keyEnd] == "" {
		*errs = append(*errs, validator.ValidationError{
			Field:   keyEnd,
			Message: keyEnd + " is required",
		})
	} else if end, ok = validator.IsValidDateTime(kv[keyEnd]); !ok {
		*errs = append(*errs, validator.ValidationError{
			Field:   keyEnd,
			Message: keyEnd + " must be an ISO8601 instant",
		})
	}

	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		*errs = append(*errs, validator.ValidationError{
			Field:   keyEnd,
			Message: keyEnd + " must be after " + keyStart,
		})
	}
	return start, end
}

func copyMap(kv map[string]string) map[string]string {
	out := make(map[string]string, len(kv))
	for k, v := range kv {
		out[k] = v
	}
	return out
}
