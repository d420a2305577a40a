package teamdraw

import (
	"fmt"

	"github.com/mcdev12/pelada/go/internal/models"
)

const (
	// MinPlayers is the smallest pool the group accepts for a draw.
	MinPlayers = 6

	// LargePoolThreshold is the pool size from which a fourth team is drawn.
	LargePoolThreshold = 24

	DefaultTeamCount   = 3
	LargePoolTeamCount = 4

	DefaultMaxAttempts = 10
)

// AllowedPlayersPerTeam are the accepted team-size overrides.
var AllowedPlayersPerTeam = []int{4, 5, 6}

// SelectionValidation is the outcome of checking a player selection before drawing.
type SelectionValidation struct {
	Valid       bool   `json:"valid"`
	Message     string `json:"message,omitempty"`
	MinRequired int    `json:"min_required"`
}

// CalculateNumTeams returns 3, or 4 for pools of LargePoolThreshold players or more.
func CalculateNumTeams(playerCount int) int {
	if playerCount >= LargePoolThreshold {
		return LargePoolTeamCount
	}
	return DefaultTeamCount
}

// CalculatePerTeamLimit returns ceil(playerCount / numTeams).
func CalculatePerTeamLimit(playerCount, numTeams int) int {
	if numTeams <= 0 || playerCount <= 0 {
		return 0
	}
	return (playerCount + numTeams - 1) / numTeams
}

// ValidatePlayerSelection checks the selection against MinPlayers.
func ValidatePlayerSelection(players []models.Player) SelectionValidation {
	return ValidatePlayerCount(len(players), MinPlayers)
}

// ValidatePlayerCount checks count against a caller-supplied minimum.
func ValidatePlayerCount(count, minRequired int) SelectionValidation {
	if count < minRequired {
		return SelectionValidation{
			Valid:       false,
			Message:     fmt.Sprintf("select at least %d players to draw teams (selected %d)", minRequired, count),
			MinRequired: minRequired,
		}
	}
	return SelectionValidation{Valid: true, MinRequired: minRequired}
}
