package request

import (
	"time"
)

// Type enumerates the request kinds a collaborator can submit. The values
// are the original Spanish wire spellings; they serve serialization only.
type Type string

const (
	TypeVacation        Type = "vacaciones"
	TypeCompDay         Type = "dia_compensatorio"
	TypePermit          Type = "permiso"
	TypeOvertime        Type = "horas_extra"
	TypeCreditUsage     Type = "uso_horas_a_favor"
	TypeSpecialActivity Type = "actividad_especial"
)

// Types lists every valid request type.
func Types() []Type {
	return []Type{
		TypeVacation,
		TypeCompDay,
		TypePermit,
		TypeOvertime,
		TypeCreditUsage,
		TypeSpecialActivity,
	}
}

// IsTimeOff reports whether the type represents a time-off span.
func (t Type) IsTimeOff() bool {
	return t == TypeVacation || t == TypeCompDay || t == TypePermit
}

// Title renders the type for calendar event titles ("Vacaciones", ...).
func (t Type) Title() string {
	switch t {
	case TypeVacation:
		return "Vacaciones"
	case TypeCompDay:
		return "Dia Compensatorio"
	case TypePermit:
		return "Permiso"
	case TypeOvertime:
		return "Horas Extra"
	case TypeCreditUsage:
		return "Uso Horas A Favor"
	case TypeSpecialActivity:
		return "Actividad Especial"
	}
	return string(t)
}

// Status is the review state of a request.
type Status string

const (
	StatusPending    Status = "pendiente"
	StatusApproved   Status = "aprobada"
	StatusRejected   Status = "rechazada"
	StatusCorrection Status = "correccion"
)

// Request is a collaborator-submitted ask subject to review. The core
// fields are immutable after creation; only the review state mutates, and
// only one way: pending -> approved | rejected | correction.
type Request struct {
	ID             string
	CollaboratorID string
	Type           Type
	CreatedAt      time.Time
	Payload        Payload

	Status   Status
	Reviewer string
	Comments []string
}

// Approve marks the request approved. No comment is required.
func (r *Request) Approve(reviewer string) error {
	if r.Status != StatusPending {
		return ErrAlreadyProcessed
	}
	r.Status = StatusApproved
	r.Reviewer = reviewer
	return nil
}

// Reject marks the request rejected. A non-empty comment is required.
func (r *Request) Reject(reviewer, comment string) error {
	if comment == "" {
		return ErrCommentRequired
	}
	if r.Status != StatusPending {
		return ErrAlreadyProcessed
	}
	r.Status = StatusRejected
	r.Reviewer = reviewer
	r.Comments = append(r.Comments, comment)
	return nil
}

// AskCorrection sends the request back for correction. A non-empty comment
// is required. A corrected request is resubmitted as a new one.
func (r *Request) AskCorrection(reviewer, comment string) error {
	if comment == "" {
		return ErrCommentRequired
	}
	if r.Status != StatusPending {
		return ErrAlreadyProcessed
	}
	r.Status = StatusCorrection
	r.Reviewer = reviewer
	r.Comments = append(r.Comments, comment)
	return nil
}

// Clone returns a deep copy so repository reads never alias stored state.
func (r *Request) Clone() *Request {
	clone := *r
	clone.Comments = append([]string(nil), r.Comments...)
	return &clone
}
