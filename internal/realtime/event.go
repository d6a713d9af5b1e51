package realtime

import (
	"encoding/json"
	"time"
)

const EventStepGenerated = "sales.step.generated"

// Event is the message fanned out on the bus after something happens to a conversation.
type Event struct {
	Type      string          `json:"type"`
	Actor     string          `json:"actor,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	At        time.Time       `json:"at"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewEvent marshals data into an Event stamped with the current time.
func NewEvent(eventType, actor, requestID string, data any) (Event, error) {
	ev := Event{Type: eventType, Actor: actor, RequestID: requestID, At: time.Now().UTC()}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return Event{}, err
		}
		ev.Data = raw
	}
	return ev, nil
}
