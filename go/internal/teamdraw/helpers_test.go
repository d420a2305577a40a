package teamdraw

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog"
)

var testNow = time.Date(2024, 3, 9, 19, 30, 0, 0, time.UTC)

func makePlayers(n int, rating float64) []models.Player {
	players := make([]models.Player, n)
	for i := range players {
		players[i] = models.Player{
			ID:          fmt.Sprintf("p%02d", i+1),
			Name:        fmt.Sprintf("Player %d", i+1),
			Position:    "linha",
			SkillRating: rating,
		}
	}
	return players
}

func newTestDrawer(opts ...Option) *Drawer {
	jitter := int64(0)
	base := []Option{
		WithClock(clockwork.NewFakeClockAt(testNow)),
		WithLogger(zerolog.Nop()),
		WithJitter(func() int64 {
			jitter = (jitter + 7) % seedJitterRange
			return jitter
		}),
		WithIDGenerator(func() uuid.UUID { return uuid.New() }),
	}
	return NewDrawer(append(base, opts...)...)
}

func seedPtr(s int64) *int64 { return &s }

func bucketIDs(b models.TeamBucket) []string {
	ids := make([]string, len(b.Players))
	for i, p := range b.Players {
		ids[i] = p.ID
	}
	return ids
}
