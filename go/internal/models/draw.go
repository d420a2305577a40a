package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamColor labels one team (bib color) within a draw.
type TeamColor string

const (
	TeamColorBlue   TeamColor = "blue"
	TeamColorRed    TeamColor = "red"
	TeamColorGreen  TeamColor = "green"
	TeamColorYellow TeamColor = "yellow"
)

// AllTeamColors is the full label set in allocation order.
var AllTeamColors = []TeamColor{TeamColorBlue, TeamColorRed, TeamColorGreen, TeamColorYellow}

// TeamColorsFor returns the first n labels, capped at the closed set.
func TeamColorsFor(n int) []TeamColor {
	if n < 0 {
		n = 0
	}
	if n > len(AllTeamColors) {
		n = len(AllTeamColors)
	}
	return AllTeamColors[:n:n]
}

// TeamBucket holds one team's players in assignment order.
type TeamBucket struct {
	Players    []Player `json:"players"`
	TotalSkill float64  `json:"total_skill"`
}

// TeamAssignment maps each drawn team color to its bucket.
type TeamAssignment map[TeamColor]TeamBucket

// DrawStats summarizes the bucket skill totals.
type DrawStats struct {
	AverageSkill float64 `json:"average_skill"`
	MinSkill     float64 `json:"min_skill"`
	MaxSkill     float64 `json:"max_skill"`
	Variance     float64 `json:"variance"`
}

// DrawResult is one complete team drawing for a match.
type DrawResult struct {
	ID                uuid.UUID      `json:"id"`
	MatchID           string         `json:"match_id"`
	Teams             TeamAssignment `json:"teams"`
	SelectedPlayerIDs []string       `json:"selected_player_ids"`
	Seed              int64          `json:"seed"`
	CreatedAt         time.Time      `json:"created_at"`
	Stats             DrawStats      `json:"stats"`
	Unassigned        []Player       `json:"unassigned,omitempty"` // players beyond total capacity
	PreviousDrawID    *uuid.UUID     `json:"previous_draw_id,omitempty"`
}

// AssignedCount returns the number of players placed in any bucket.
func (d *DrawResult) AssignedCount() int {
	n := 0
	for _, b := range d.Teams {
		n += len(b.Players)
	}
	return n
}
