package teamdraw

import (
	"math"

	"github.com/mcdev12/pelada/go/internal/models"
)

// FallbackSkillRating is used when nobody in the pool has a rating.
const FallbackSkillRating = 10

// DefaultRating returns the rounded mean of all positive ratings in the pool,
// or FallbackSkillRating when there are none.
func DefaultRating(players []models.Player) float64 {
	var sum float64
	var rated int
	for _, p := range players {
		if p.SkillRating > 0 {
			sum += p.SkillRating
			rated++
		}
	}
	if rated == 0 {
		return FallbackSkillRating
	}
	return math.Round(sum / float64(rated))
}

// NormalizeRatings returns copies of players with missing ratings replaced by
// the pool default and the position resolved into a Role.
func NormalizeRatings(players []models.Player) []models.Player {
	def := DefaultRating(players)
	out := make([]models.Player, len(players))
	for i, p := range players {
		if p.SkillRating <= 0 {
			p.SkillRating = def
		}
		if p.Role == "" {
			p.Role = models.RoleForPosition(p.Position)
		}
		out[i] = p
	}
	return out
}
