package calendar

import (
	"time"
)

// Event is a derived, non-authoritative display record of a time span.
// Standing events come from approved requests; shift and holiday events are
// synthesized fresh on every calendar build.
type Event struct {
	Title          string
	Start          time.Time
	End            time.Time
	CollaboratorID string
	Metadata       map[string]string
}
