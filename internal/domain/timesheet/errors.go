package timesheet

import "errors"

// Flow violations: an attendance action attempted out of its legal
// sequence. They are reported to the caller and never auto-corrected.
var (
	ErrAlreadyCheckedIn = errors.New("a check-in already exists for this day")
	ErrNotCheckedIn     = errors.New("you have not checked in yet")
	ErrBreakAlreadyOpen = errors.New("a break is already in progress")
	ErrNoOpenBreak      = errors.New("no break in progress to end")
	ErrDayClosed        = errors.New("the day has already been checked out")
	ErrAlreadyCheckedOut = errors.New("check-out has already been recorded")
)

// General errors
var (
	ErrEntryNotFound = errors.New("time entry not found")
)

// IsFlowViolation reports whether err is one of the attendance sequence
// errors, as opposed to a lookup or validation failure.
func IsFlowViolation(err error) bool {
	for _, sentinel := range []error{
		ErrAlreadyCheckedIn,
		ErrNotCheckedIn,
		ErrBreakAlreadyOpen,
		ErrNoOpenBreak,
		ErrDayClosed,
		ErrAlreadyCheckedOut,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
