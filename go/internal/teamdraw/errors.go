package teamdraw

import "errors"

var (
	// ErrInvalidPlayer is returned for a player without an ID or with a negative rating
	ErrInvalidPlayer = errors.New("invalid player")
	// ErrDuplicatePlayer is returned when the same player ID is selected twice
	ErrDuplicatePlayer = errors.New("duplicate player")
	// ErrInvalidPlayersPerTeam is returned for a team size outside AllowedPlayersPerTeam
	ErrInvalidPlayersPerTeam = errors.New("invalid players per team")
)
