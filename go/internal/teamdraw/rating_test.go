package teamdraw

import (
	"testing"

	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{name: "no players", ratings: nil, want: FallbackSkillRating},
		{name: "all unrated", ratings: []float64{0, 0, 0}, want: FallbackSkillRating},
		{name: "mean of rated only", ratings: []float64{4, 0, 6}, want: 5},
		{name: "rounds half up", ratings: []float64{3, 4}, want: 4},
		{name: "rounds down", ratings: []float64{3, 3, 4}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := make([]models.Player, len(tt.ratings))
			for i, r := range tt.ratings {
				players[i] = models.Player{ID: string(rune('a' + i)), SkillRating: r}
			}
			assert.Equal(t, tt.want, DefaultRating(players))
		})
	}
}

func TestNormalizeRatings(t *testing.T) {
	players := []models.Player{
		{ID: "a", SkillRating: 8},
		{ID: "b"},
		{ID: "c", SkillRating: 4, Position: "Goleiro"},
	}

	out := NormalizeRatings(players)

	require.Len(t, out, 3)
	assert.Equal(t, 8.0, out[0].SkillRating)
	assert.Equal(t, 6.0, out[1].SkillRating)
	assert.Equal(t, 4.0, out[2].SkillRating)
	assert.Equal(t, models.RoleRegular, out[0].Role)
	assert.Equal(t, models.RoleGoalkeeper, out[2].Role)

	// input untouched
	assert.Equal(t, 0.0, players[1].SkillRating)
	assert.Equal(t, models.Role(""), players[2].Role)
}

func TestNormalizeRatings_KeepsExplicitRole(t *testing.T) {
	out := NormalizeRatings([]models.Player{{ID: "a", Role: models.RoleGoalkeeper}})
	assert.Equal(t, models.RoleGoalkeeper, out[0].Role)
}
