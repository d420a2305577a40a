package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/pelada/go/internal/events"
)

// MatchEvent is the frame pushed to WebSocket clients
type MatchEvent struct {
	ID        string          `json:"id"`
	MatchID   string          `json:"match_id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

type EventType string

const (
	EventTypeDrawCreated EventType = events.EventTypeDrawCreated
)

// toMatchEvent converts a bus envelope to a client frame. Unknown event
// types are rejected.
func toMatchEvent(env events.Envelope) (*MatchEvent, error) {
	var t EventType
	switch env.EventType {
	case events.EventTypeDrawCreated:
		t = EventTypeDrawCreated
	default:
		return nil, fmt.Errorf("unknown event type: %s", env.EventType)
	}

	return &MatchEvent{
		ID:        env.EventID,
		MatchID:   env.MatchID,
		Type:      t,
		Timestamp: env.Timestamp,
		Data:      env.Payload,
	}, nil
}
