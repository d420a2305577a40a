package teamdraw

import (
	"math/rand/v2"
	"slices"

	"github.com/mcdev12/pelada/go/internal/models"
)

// ShuffleResult is a permuted copy of a player list and the seed that produced it.
type ShuffleResult struct {
	Shuffled []models.Player
	Seed     int64
}

// SeededShuffle returns a Fisher-Yates permutation of players driven by seed.
// The input slice is not modified.
func SeededShuffle(players []models.Player, seed int64) ShuffleResult {
	return ShuffleResult{
		Shuffled: shuffleWith(players, NewSeededRand(seed)),
		Seed:     seed,
	}
}

// Shuffle returns a permuted copy of players using the process-wide source.
// Results are not reproducible, so draws never go through it.
func Shuffle(players []models.Player) []models.Player {
	out := slices.Clone(players)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func shuffleWith(players []models.Player, rng *SeededRand) []models.Player {
	out := slices.Clone(players)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
