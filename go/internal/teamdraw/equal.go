package teamdraw

import (
	"slices"

	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/samber/lo"
)

// AreDrawsEqual reports whether two assignments put the same players under
// every team color. Player order within a team is ignored. Labels matter:
// the same groups under swapped colors compare unequal.
func AreDrawsEqual(a, b models.TeamAssignment) bool {
	for _, color := range models.AllTeamColors {
		ba, okA := a[color]
		bb, okB := b[color]
		if okA != okB {
			return false
		}
		if !okA {
			continue
		}
		if !slices.Equal(sortedIDs(ba.Players), sortedIDs(bb.Players)) {
			return false
		}
	}
	return true
}

func sortedIDs(players []models.Player) []string {
	ids := lo.Map(players, func(p models.Player, _ int) string { return p.ID })
	slices.Sort(ids)
	return ids
}
