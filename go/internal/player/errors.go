package player

import "errors"

var (
	// ErrNoPlayers is returned when a selection names no players
	ErrNoPlayers = errors.New("no players selected")
	// ErrPlayerNotFound is returned when a selected ID is not in the directory
	ErrPlayerNotFound = errors.New("player not found")
)
