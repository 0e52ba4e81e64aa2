package collaborator

import (
	"time"
)

// WeeklySchedule maps each weekday to the hours a collaborator is expected
// to work on it. A zero duration means a day off.
type WeeklySchedule map[time.Weekday]time.Duration

// DefaultWeeklySchedule is the studio's standard pattern: eight hours
// Monday through Friday plus a half day on Saturday.
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		time.Monday:    8 * time.Hour,
		time.Tuesday:   8 * time.Hour,
		time.Wednesday: 8 * time.Hour,
		time.Thursday:  8 * time.Hour,
		time.Friday:    8 * time.Hour,
		time.Saturday:  4 * time.Hour,
		time.Sunday:    0,
	}
}

// ExpectedBetween sums the scheduled hours over [start, end], inclusive on
// both ends. Start and end are calendar days; times of day are ignored.
func (s WeeklySchedule) ExpectedBetween(start, end time.Time) time.Duration {
	start = truncateToDay(start)
	end = truncateToDay(end)

	var total time.Duration
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		total += s[day.Weekday()]
	}
	return total
}

type Collaborator struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	Schedule     WeeklySchedule
	CreatedAt    time.Time
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
