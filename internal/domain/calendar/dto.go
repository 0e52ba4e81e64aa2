package calendar

import (
	"time"
)

type EventResponse struct {
	Title          string            `json:"title"`
	Start          string            `json:"start"`
	End            string            `json:"end"`
	CollaboratorID string            `json:"collaborator_id,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		Title:          e.Title,
		Start:          e.Start.Format(time.RFC3339),
		End:            e.End.Format(time.RFC3339),
		CollaboratorID: e.CollaboratorID,
		Metadata:       e.Metadata,
	}
}
