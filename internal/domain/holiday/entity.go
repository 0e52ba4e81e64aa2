package holiday

import (
	"time"
)

// Holiday is a configurable non-working day. An empty Collaborators list
// means the holiday applies to everyone.
type Holiday struct {
	Name          string
	Day           time.Time
	Paid          bool
	Compensable   bool
	Collaborators []string
}

// AppliesTo reports whether the holiday covers the given collaborator.
func (h Holiday) AppliesTo(collaboratorID string) bool {
	if len(h.Collaborators) == 0 {
		return true
	}
	for _, id := range h.Collaborators {
		if id == collaboratorID {
			return true
		}
	}
	return false
}
