package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps every event on the bus.
type Envelope struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	MatchID   string          `json:"matchId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewEnvelope marshals payload into an envelope with a fresh event ID.
func NewEnvelope(eventType, matchID string, payload any, now time.Time) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}
	return Envelope{
		EventID:   uuid.New().String(),
		EventType: eventType,
		MatchID:   matchID,
		Timestamp: now.UTC(),
		Payload:   raw,
	}, nil
}

// DecodeEnvelope parses an envelope read from the bus.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal event envelope: %w", err)
	}
	if env.EventType == "" || env.MatchID == "" {
		return Envelope{}, fmt.Errorf("event envelope missing type or match id")
	}
	return env, nil
}
