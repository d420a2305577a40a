package teamdraw

import (
	"cmp"
	"math"
	"slices"

	"github.com/mcdev12/pelada/go/internal/models"
)

// teamBuilder owns the in-progress buckets of a single draw. It is created by
// the Drawer and never shared outside that call.
type teamBuilder struct {
	colors   []models.TeamColor
	buckets  []models.TeamBucket
	capacity int
	rng      *SeededRand
}

func newTeamBuilder(colors []models.TeamColor, capacity int, rng *SeededRand) *teamBuilder {
	return &teamBuilder{
		colors:   colors,
		buckets:  make([]models.TeamBucket, len(colors)),
		capacity: capacity,
		rng:      rng,
	}
}

// pickTeam returns the index of the open team with the lowest skill total,
// then fewest members, then a seeded random choice. -1 means every team is full.
func (b *teamBuilder) pickTeam() int {
	var ties []int
	for i := range b.buckets {
		if len(b.buckets[i].Players) >= b.capacity {
			continue
		}
		if len(ties) == 0 {
			ties = append(ties, i)
			continue
		}
		switch b.compare(i, ties[0]) {
		case -1:
			ties = append(ties[:0], i)
		case 0:
			ties = append(ties, i)
		}
	}

	switch len(ties) {
	case 0:
		return -1
	case 1:
		return ties[0]
	default:
		return ties[b.rng.Intn(len(ties))]
	}
}

func (b *teamBuilder) compare(i, j int) int {
	a, c := b.buckets[i], b.buckets[j]
	switch {
	case a.TotalSkill < c.TotalSkill:
		return -1
	case a.TotalSkill > c.TotalSkill:
		return 1
	case len(a.Players) < len(c.Players):
		return -1
	case len(a.Players) > len(c.Players):
		return 1
	}
	return 0
}

// place assigns p to the best open team. It reports false when all teams are full.
func (b *teamBuilder) place(p models.Player) bool {
	idx := b.pickTeam()
	if idx < 0 {
		return false
	}
	b.buckets[idx].Players = append(b.buckets[idx].Players, p)
	b.buckets[idx].TotalSkill += p.SkillRating
	return true
}

// allocateCritical places goalkeepers, in list order, before anyone else.
// It returns the remaining regular players and any goalkeepers that did not fit.
func (b *teamBuilder) allocateCritical(players []models.Player) (regular, dropped []models.Player) {
	for _, p := range players {
		if !p.IsGoalkeeper() {
			regular = append(regular, p)
			continue
		}
		if !b.place(p) {
			dropped = append(dropped, p)
		}
	}
	return regular, dropped
}

// balance places the strongest players first so lighter ones can even out the totals.
func (b *teamBuilder) balance(players []models.Player) (dropped []models.Player) {
	for _, p := range sortBySkillDesc(players) {
		if !b.place(p) {
			dropped = append(dropped, p)
		}
	}
	return dropped
}

func (b *teamBuilder) assignment() models.TeamAssignment {
	teams := make(models.TeamAssignment, len(b.colors))
	for i, color := range b.colors {
		bucket := b.buckets[i]
		if bucket.Players == nil {
			bucket.Players = []models.Player{}
		}
		teams[color] = bucket
	}
	return teams
}

func (b *teamBuilder) stats() models.DrawStats {
	totals := make([]float64, len(b.buckets))
	for i, bucket := range b.buckets {
		totals[i] = bucket.TotalSkill
	}
	return computeStats(totals)
}

// computeStats returns mean, min, max and population variance of totals.
func computeStats(totals []float64) models.DrawStats {
	if len(totals) == 0 {
		return models.DrawStats{}
	}

	minSkill, maxSkill := math.Inf(1), math.Inf(-1)
	var sum float64
	for _, t := range totals {
		sum += t
		minSkill = math.Min(minSkill, t)
		maxSkill = math.Max(maxSkill, t)
	}
	mean := sum / float64(len(totals))

	var sq float64
	for _, t := range totals {
		sq += (t - mean) * (t - mean)
	}

	return models.DrawStats{
		AverageSkill: mean,
		MinSkill:     minSkill,
		MaxSkill:     maxSkill,
		Variance:     sq / float64(len(totals)),
	}
}

// sortBySkillDesc returns a copy ordered by rating, strongest first. Equal
// ratings keep their shuffled order.
func sortBySkillDesc(players []models.Player) []models.Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b models.Player) int {
		return cmp.Compare(b.SkillRating, a.SkillRating)
	})
	return out
}
