package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func instant(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestWorkedDuration_OpenDayIsZero(t *testing.T) {
	entry := NewTimeEntry("c1", instant(9, 0))
	assert.Equal(t, time.Duration(0), entry.WorkedDuration(instant(12, 0)))

	entry.CheckIn = ptr(instant(9, 0))
	assert.Equal(t, time.Duration(0), entry.WorkedDuration(instant(12, 0)))
}

func TestWorkedDuration_CompleteDayMinusBreaks(t *testing.T) {
	entry := NewTimeEntry("c1", instant(9, 0))
	entry.CheckIn = ptr(instant(9, 0))
	entry.Breaks = []BreakInterval{
		{Start: instant(13, 0), End: instant(14, 0)},
		{Start: instant(16, 0), End: instant(16, 15)},
	}
	entry.CheckOut = ptr(instant(18, 0))

	assert.Equal(t, 7*time.Hour+45*time.Minute, entry.WorkedDuration(instant(20, 0)))
}

func TestWorkedDuration_OpenBreakCountsAgainstWorkedTime(t *testing.T) {
	entry := NewTimeEntry("c1", instant(9, 0))
	entry.CheckIn = ptr(instant(9, 0))
	entry.OpenBreak = ptr(instant(13, 0))
	entry.CheckOut = ptr(instant(18, 0))

	// asOf past check-out: the open break window is capped at check-out.
	assert.Equal(t, 4*time.Hour, entry.WorkedDuration(instant(23, 0)))

	// asOf mid-break: only the elapsed portion is deducted.
	assert.Equal(t, 8*time.Hour+30*time.Minute, entry.WorkedDuration(instant(13, 30)))
}

func TestWorkedDuration_NeverNegative(t *testing.T) {
	entry := NewTimeEntry("c1", instant(9, 0))
	entry.CheckIn = ptr(instant(9, 0))
	entry.Breaks = []BreakInterval{{Start: instant(8, 0), End: instant(19, 0)}}
	entry.CheckOut = ptr(instant(18, 0))

	assert.Equal(t, time.Duration(0), entry.WorkedDuration(instant(20, 0)))
}

func TestWorkedDuration_DeterministicForSameAsOf(t *testing.T) {
	entry := NewTimeEntry("c1", instant(9, 0))
	entry.CheckIn = ptr(instant(9, 0))
	entry.OpenBreak = ptr(instant(12, 0))
	entry.CheckOut = ptr(instant(17, 0))

	asOf := instant(15, 0)
	first := entry.WorkedDuration(asOf)
	second := entry.WorkedDuration(asOf)
	assert.Equal(t, first, second)
}

func TestClone_DoesNotAliasStoredState(t *testing.T) {
	entry := NewTimeEntry("c1", instant(9, 0))
	entry.CheckIn = ptr(instant(9, 0))
	entry.AddNote("original")

	clone := entry.Clone()
	clone.AddNote("copy only")
	*clone.CheckIn = instant(10, 0)

	assert.Equal(t, []string{"original"}, entry.Notes)
	assert.Equal(t, instant(9, 0), *entry.CheckIn)
}
