package draw

import (
	"github.com/mcdev12/pelada/go/internal/models"
)

// CreateDrawRequest asks for a new draw for a match.
type CreateDrawRequest struct {
	MatchID        string
	PlayerIDs      []string
	Seed           *int64
	PlayersPerTeam int
	// Unique makes the draw differ from the latest stored draw of the match.
	Unique bool
}

func (r CreateDrawRequest) mode() string {
	switch {
	case r.Unique:
		return "unique"
	case r.Seed != nil:
		return "seeded"
	default:
		return "random"
	}
}

// TeamPreview tells the UI how a pool of a given size will be split.
type TeamPreview struct {
	NumTeams     int
	PerTeamLimit int
	Colors       []models.TeamColor
	Overflow     int // players that would not fit
}
