package timesheet

import (
	"time"
)

// BreakInterval is a completed [Start, End) break within a workday.
type BreakInterval struct {
	Start time.Time
	End   time.Time
}

func (b BreakInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// TimeEntry is one collaborator's attendance record for one calendar day.
// It is created lazily on the first clock action and mutated only through
// the attendance service; same-day corrections replace the whole entry.
type TimeEntry struct {
	CollaboratorID string
	Day            time.Time // date identity; time of day is always midnight
	CheckIn        *time.Time
	Breaks         []BreakInterval
	OpenBreak      *time.Time // start of the break still in progress, if any
	CheckOut       *time.Time
	Notes          []string // append-only
}

// NewTimeEntry creates an empty entry for the given collaborator and day.
func NewTimeEntry(collaboratorID string, day time.Time) *TimeEntry {
	return &TimeEntry{
		CollaboratorID: collaboratorID,
		Day:            Day(day),
	}
}

// Day truncates an instant to its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a day for use as a map key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (e *TimeEntry) AddNote(note string) {
	e.Notes = append(e.Notes, note)
}

// IsClosed reports whether the day has been checked out.
func (e *TimeEntry) IsClosed() bool {
	return e.CheckOut != nil
}

// WorkedDuration returns the effective time worked: the check-in to
// check-out span minus completed breaks, minus the elapsed portion of a
// break still open at asOf. An open break keeps counting as unpaid time;
// the check-out instant caps its window. Returns zero when either check-in
// or check-out is missing, and never goes negative.
func (e *TimeEntry) WorkedDuration(asOf time.Time) time.Duration {
	if e.CheckIn == nil || e.CheckOut == nil {
		return 0
	}

	total := e.CheckOut.Sub(*e.CheckIn)
	for _, b := range e.Breaks {
		total -= b.Duration()
	}

	if e.OpenBreak != nil {
		cap := asOf
		if cap.After(*e.CheckOut) {
			cap = *e.CheckOut
		}
		if cap.After(*e.OpenBreak) {
			total -= cap.Sub(*e.OpenBreak)
		}
	}

	if total < 0 {
		return 0
	}
	return total
}

// Clone returns a deep copy so repository reads never alias stored state.
func (e *TimeEntry) Clone() *TimeEntry {
	clone := *e
	clone.Breaks = append([]BreakInterval(nil), e.Breaks...)
	clone.Notes = append([]string(nil), e.Notes...)
	if e.CheckIn != nil {
		v := *e.CheckIn
		clone.CheckIn = &v
	}
	if e.OpenBreak != nil {
		v := *e.OpenBreak
		clone.OpenBreak = &v
	}
	if e.CheckOut != nil {
		v := *e.CheckOut
		clone.CheckOut = &v
	}
	return &clone
}
