package draw

import "errors"

var (
	// ErrInvalidRequest is returned when a request fails validation
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotEnoughPlayers is returned when the selection is below the group minimum
	ErrNotEnoughPlayers = errors.New("not enough players")
	// ErrDrawNotFound is returned when a match has no stored draw
	ErrDrawNotFound = errors.New("draw not found")
)
