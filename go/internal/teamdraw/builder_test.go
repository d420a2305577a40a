package teamdraw

import (
	"testing"

	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeTeams(capacity int, seed int64) *teamBuilder {
	return newTeamBuilder(models.TeamColorsFor(3), capacity, NewSeededRand(seed))
}

func TestTeamBuilder_PickTeamPrefersLowestTotal(t *testing.T) {
	b := threeTeams(5, 1)
	b.buckets[0].TotalSkill = 20
	b.buckets[1].TotalSkill = 10
	b.buckets[2].TotalSkill = 15

	assert.Equal(t, 1, b.pickTeam())
}

func TestTeamBuilder_PickTeamBreaksTiesByMemberCount(t *testing.T) {
	b := threeTeams(5, 1)
	b.buckets[0] = models.TeamBucket{TotalSkill: 10, Players: make([]models.Player, 2)}
	b.buckets[1] = models.TeamBucket{TotalSkill: 10, Players: make([]models.Player, 1)}
	b.buckets[2] = models.TeamBucket{TotalSkill: 12, Players: make([]models.Player, 1)}

	assert.Equal(t, 1, b.pickTeam())
}

func TestTeamBuilder_PickTeamSkipsFullTeams(t *testing.T) {
	b := threeTeams(1, 1)
	b.buckets[0] = models.TeamBucket{Players: make([]models.Player, 1)}
	b.buckets[2] = models.TeamBucket{TotalSkill: 30, Players: make([]models.Player, 0)}
	b.buckets[1] = models.TeamBucket{Players: make([]models.Player, 1)}

	assert.Equal(t, 2, b.pickTeam())

	b.buckets[2].Players = make([]models.Player, 1)
	assert.Equal(t, -1, b.pickTeam())
}

func TestTeamBuilder_RandomTieBreakIsSeeded(t *testing.T) {
	pick := func(seed int64) []int {
		b := threeTeams(10, seed)
		var picks []int
		for i := 0; i < 6; i++ {
			picks = append(picks, b.pickTeam())
		}
		return picks
	}

	assert.Equal(t, pick(77), pick(77))

	// all empty teams tie, so every index must be reachable across seeds
	seen := map[int]bool{}
	for seed := int64(0); seed < 50; seed++ {
		seen[threeTeams(10, seed).pickTeam()] = true
	}
	assert.Len(t, seen, 3)
}

func TestTeamBuilder_AllocateCriticalSpreadsGoalkeepers(t *testing.T) {
	b := threeTeams(4, 3)
	players := []models.Player{
		{ID: "gk1", SkillRating: 8, Role: models.RoleGoalkeeper},
		{ID: "r1", SkillRating: 9, Role: models.RoleRegular},
		{ID: "gk2", SkillRating: 6, Role: models.RoleGoalkeeper},
		{ID: "gk3", SkillRating: 7, Role: models.RoleGoalkeeper},
		{ID: "r2", SkillRating: 5, Role: models.RoleRegular},
	}

	regular, dropped := b.allocateCritical(players)

	assert.Empty(t, dropped)
	assert.Equal(t, []string{"r1", "r2"}, []string{regular[0].ID, regular[1].ID})
	for i := range b.buckets {
		require.Len(t, b.buckets[i].Players, 1)
		assert.True(t, b.buckets[i].Players[0].IsGoalkeeper())
	}
}

func TestTeamBuilder_AllocateCriticalDropsWhenFull(t *testing.T) {
	b := threeTeams(1, 3)
	var players []models.Player
	for _, id := range []string{"gk1", "gk2", "gk3", "gk4"} {
		players = append(players, models.Player{ID: id, SkillRating: 5, Role: models.RoleGoalkeeper})
	}

	regular, dropped := b.allocateCritical(players)

	assert.Empty(t, regular)
	require.Len(t, dropped, 1)
	assert.Equal(t, "gk4", dropped[0].ID)
}

func TestTeamBuilder_BalanceEvensTotals(t *testing.T) {
	b := threeTeams(2, 11)
	players := []models.Player{
		{ID: "a", SkillRating: 1},
		{ID: "b", SkillRating: 6},
		{ID: "c", SkillRating: 2},
		{ID: "d", SkillRating: 5},
		{ID: "e", SkillRating: 3},
		{ID: "f", SkillRating: 4},
	}

	dropped := b.balance(players)

	assert.Empty(t, dropped)
	for i := range b.buckets {
		assert.Len(t, b.buckets[i].Players, 2)
		assert.Equal(t, 7.0, b.buckets[i].TotalSkill)
	}
}

func TestTeamBuilder_BalanceDropsBeyondCapacity(t *testing.T) {
	b := threeTeams(1, 11)
	dropped := b.balance(makePlayers(5, 3))

	assert.Len(t, dropped, 2)
	for i := range b.buckets {
		assert.Len(t, b.buckets[i].Players, 1)
	}
}

func TestSortBySkillDesc_Stable(t *testing.T) {
	players := []models.Player{
		{ID: "a", SkillRating: 3},
		{ID: "b", SkillRating: 5},
		{ID: "c", SkillRating: 3},
		{ID: "d", SkillRating: 5},
	}

	out := sortBySkillDesc(players)

	assert.Equal(t, []string{"b", "d", "a", "c"}, []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID})
	assert.Equal(t, "a", players[0].ID)
}

func TestComputeStats(t *testing.T) {
	stats := computeStats([]float64{55, 50, 50})

	assert.InDelta(t, 155.0/3, stats.AverageSkill, 1e-9)
	assert.Equal(t, 50.0, stats.MinSkill)
	assert.Equal(t, 55.0, stats.MaxSkill)
	assert.InDelta(t, 50.0/9, stats.Variance, 1e-9)

	assert.Equal(t, models.DrawStats{}, computeStats(nil))
	assert.Equal(t, models.DrawStats{}, computeStats([]float64{0, 0, 0}))
}

func TestTeamBuilder_AssignmentHasEveryColor(t *testing.T) {
	b := newTeamBuilder(models.TeamColorsFor(4), 0, NewSeededRand(1))
	teams := b.assignment()

	require.Len(t, teams, 4)
	for _, color := range models.AllTeamColors {
		bucket, ok := teams[color]
		require.True(t, ok)
		assert.NotNil(t, bucket.Players)
		assert.Empty(t, bucket.Players)
	}
}
