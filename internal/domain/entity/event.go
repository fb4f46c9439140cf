package entity

import "time"

const (
	EventCourseCreated    = "course.created"
	EventPurchaseRecorded = "purchase.recorded"
)

// Event is the JSON payload published on the events queue.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

func NewEvent(typ string, data map[string]any) Event {
	return Event{Type: typ, OccurredAt: time.Now().UTC(), Data: data}
}
