package events

import (
	"time"

	"github.com/mcdev12/pelada/go/internal/models"
)

// EventTypeDrawCreated is emitted after a draw has been stored.
const EventTypeDrawCreated = "DrawCreated"

// DrawCreatedPayload is the payload for a DrawCreated event
type DrawCreatedPayload struct {
	DrawID         string                `json:"draw_id"`
	MatchID        string                `json:"match_id"`
	PreviousDrawID string                `json:"previous_draw_id,omitempty"`
	Seed           int64                 `json:"seed"`
	Teams          models.TeamAssignment `json:"teams"`
	Stats          models.DrawStats      `json:"stats"`
	Unassigned     []string              `json:"unassigned,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// NewDrawCreatedPayload builds the event payload for a stored draw.
func NewDrawCreatedPayload(draw *models.DrawResult) DrawCreatedPayload {
	p := DrawCreatedPayload{
		DrawID:    draw.ID.String(),
		MatchID:   draw.MatchID,
		Seed:      draw.Seed,
		Teams:     draw.Teams,
		Stats:     draw.Stats,
		CreatedAt: draw.CreatedAt,
	}
	if draw.PreviousDrawID != nil {
		p.PreviousDrawID = draw.PreviousDrawID.String()
	}
	for _, u := range draw.Unassigned {
		p.Unassigned = append(p.Unassigned, u.ID)
	}
	return p
}
