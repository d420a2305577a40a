package models

import "strings"

// Role is the closed set of positions the draw treats differently.
type Role string

const (
	RoleRegular    Role = "regular"
	RoleGoalkeeper Role = "goalkeeper"
)

var goalkeeperPositions = map[string]struct{}{
	"goleiro":    {},
	"goleira":    {},
	"gol":        {},
	"goalkeeper": {},
	"gk":         {},
	"keeper":     {},
}

// RoleForPosition resolves a free-form position label into a Role.
func RoleForPosition(position string) Role {
	if _, ok := goalkeeperPositions[strings.ToLower(strings.TrimSpace(position))]; ok {
		return RoleGoalkeeper
	}
	return RoleRegular
}

// Player represents a group member selected for a match
type Player struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Position    string  `json:"position,omitempty"`
	SkillRating float64 `json:"skill_rating,omitempty"` // stars; 0 means unrated
	Role        Role    `json:"role,omitempty"`         // set when the pool is normalized
}

// IsGoalkeeper reports whether the player occupies the critical position.
// Players that were never normalized fall back to parsing Position.
func (p Player) IsGoalkeeper() bool {
	if p.Role != "" {
		return p.Role == RoleGoalkeeper
	}
	return RoleForPosition(p.Position) == RoleGoalkeeper
}
