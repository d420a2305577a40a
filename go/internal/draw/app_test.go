package draw

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/player"
	"github.com/mcdev12/pelada/go/internal/teamdraw"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 9, 19, 30, 0, 0, time.UTC)

type fakeSelector struct {
	players map[string]models.Player
	// onSelect runs before each lookup.
	onSelect func()
}

func newFakeSelector(players []models.Player) *fakeSelector {
	s := &fakeSelector{players: make(map[string]models.Player)}
	for _, p := range players {
		s.players[p.ID] = p
	}
	return s
}

func (s *fakeSelector) SelectPlayers(_ context.Context, ids []string) ([]models.Player, error) {
	if s.onSelect != nil {
		s.onSelect()
	}
	if len(ids) == 0 {
		return nil, player.ErrNoPlayers
	}
	out := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := s.players[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", player.ErrPlayerNotFound, id)
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeRepo struct {
	mu    sync.Mutex
	draws []*models.DrawResult
	err   error
}

func (r *fakeRepo) SaveDraw(_ context.Context, draw *models.DrawResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.draws = append(r.draws, draw)
	return nil
}

func (r *fakeRepo) GetLatestDraw(_ context.Context, matchID string) (*models.DrawResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.draws) - 1; i >= 0; i-- {
		if r.draws[i].MatchID == matchID {
			return r.draws[i], nil
		}
	}
	return nil, ErrDrawNotFound
}

type fakePublisher struct {
	published []*models.DrawResult
	err       error
}

func (p *fakePublisher) PublishDrawCreated(_ context.Context, draw *models.DrawResult) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, draw)
	return nil
}

type fakeCollector struct {
	draws     []string
	durations []time.Duration
	failures  []string
	published map[bool]int
}

func (c *fakeCollector) RecordDraw(mode string, _, _ int, _ float64, took time.Duration) {
	c.draws = append(c.draws, mode)
	c.durations = append(c.durations, took)
}

func (c *fakeCollector) RecordDrawFailure(mode string) {
	c.failures = append(c.failures, mode)
}

func (c *fakeCollector) RecordPublish(_ string, success bool) {
	if c.published == nil {
		c.published = make(map[bool]int)
	}
	c.published[success]++
}

type testEnv struct {
	app       *App
	clock     *clockwork.FakeClock
	selector  *fakeSelector
	repo      *fakeRepo
	publisher *fakePublisher
	metrics   *fakeCollector
	ids       []string
}

func roster(n int) []models.Player {
	players := make([]models.Player, n)
	for i := range players {
		players[i] = models.Player{
			ID:          fmt.Sprintf("p%02d", i+1),
			Name:        fmt.Sprintf("Player %d", i+1),
			SkillRating: 5,
		}
	}
	players[0].Position = "goleiro"
	return players
}

func newTestEnv(t *testing.T, n int) *testEnv {
	t.Helper()
	players := roster(n)
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}

	env := &testEnv{
		clock:     clockwork.NewFakeClockAt(testNow),
		selector:  newFakeSelector(players),
		repo:      &fakeRepo{},
		publisher: &fakePublisher{},
		metrics:   &fakeCollector{},
		ids:       ids,
	}
	drawer := teamdraw.NewDrawer(
		teamdraw.WithClock(env.clock),
		teamdraw.WithLogger(zerolog.Nop()),
	)
	env.app = NewApp(env.selector, env.repo, env.publisher, drawer, env.metrics, DefaultConfig(), WithClock(env.clock))
	return env
}

func seedPtr(s int64) *int64 { return &s }

func TestCreateDraw_RecordsLatencyOnAppClock(t *testing.T) {
	env := newTestEnv(t, 10)
	env.selector.onSelect = func() { env.clock.Advance(250 * time.Millisecond) }

	draw, err := env.app.CreateDraw(context.Background(), CreateDrawRequest{
		MatchID:   "match-1",
		PlayerIDs: env.ids,
		Seed:      seedPtr(7),
	})
	require.NoError(t, err)

	require.Len(t, env.metrics.durations, 1)
	assert.Equal(t, 250*time.Millisecond, env.metrics.durations[0])
	assert.True(t, draw.CreatedAt.Equal(testNow.Add(250*time.Millisecond)))
}

func TestCreateDraw_Seeded(t *testing.T) {
	env := newTestEnv(t, 15)
	ctx := context.Background()

	draw, err := env.app.CreateDraw(ctx, CreateDrawRequest{
		MatchID:   "match-1",
		PlayerIDs: env.ids,
		Seed:      seedPtr(42),
	})
	require.NoError(t, err)

	assert.Equal(t, "match-1", draw.MatchID)
	assert.Equal(t, int64(42), draw.Seed)
	assert.Len(t, draw.Teams, 3)
	assert.Equal(t, 15, draw.AssignedCount())
	assert.Equal(t, testNow, draw.CreatedAt)
	assert.Nil(t, draw.PreviousDrawID)

	require.Len(t, env.repo.draws, 1)
	assert.Same(t, draw, env.repo.draws[0])
	require.Len(t, env.publisher.published, 1)
	assert.Equal(t, draw.ID, env.publisher.published[0].ID)
	assert.Equal(t, []string{"seeded"}, env.metrics.draws)
	assert.Equal(t, 1, env.metrics.published[true])
}

func TestCreateDraw_SameSeedSameTeams(t *testing.T) {
	env := newTestEnv(t, 18)
	ctx := context.Background()
	req := CreateDrawRequest{MatchID: "match-1", PlayerIDs: env.ids, Seed: seedPtr(2024)}

	first, err := env.app.CreateDraw(ctx, req)
	require.NoError(t, err)
	second, err := env.app.CreateDraw(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Teams, second.Teams)
}

func TestCreateDraw_NotEnoughPlayers(t *testing.T) {
	env := newTestEnv(t, 5)

	_, err := env.app.CreateDraw(context.Background(), CreateDrawRequest{
		MatchID:   "match-1",
		PlayerIDs: env.ids,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	assert.Contains(t, err.Error(), "select at least 6 players")
	assert.Empty(t, env.repo.draws)
	assert.Empty(t, env.publisher.published)
	assert.Equal(t, []string{"random"}, env.metrics.failures)
}

func TestCreateDraw_Validation(t *testing.T) {
	env := newTestEnv(t, 12)

	tests := []struct {
		name string
		req  CreateDrawRequest
		is   error
	}{
		{
			name: "missing match",
			req:  CreateDrawRequest{PlayerIDs: env.ids},
			is:   ErrInvalidRequest,
		},
		{
			name: "missing players",
			req:  CreateDrawRequest{MatchID: "m"},
			is:   ErrInvalidRequest,
		},
		{
			name: "unique with seed",
			req:  CreateDrawRequest{MatchID: "m", PlayerIDs: env.ids, Unique: true, Seed: seedPtr(1)},
			is:   ErrInvalidRequest,
		},
		{
			name: "players per team out of range",
			req:  CreateDrawRequest{MatchID: "m", PlayerIDs: env.ids, PlayersPerTeam: 7},
			is:   teamdraw.ErrInvalidPlayersPerTeam,
		},
		{
			name: "unknown player",
			req:  CreateDrawRequest{MatchID: "m", PlayerIDs: append([]string{"ghost"}, env.ids...)},
			is:   player.ErrPlayerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.app.CreateDraw(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}
	assert.Empty(t, env.repo.draws)
}

func TestCreateDraw_PublishFailureKeepsDraw(t *testing.T) {
	env := newTestEnv(t, 12)
	env.publisher.err = errors.New("nats unavailable")

	draw, err := env.app.CreateDraw(context.Background(), CreateDrawRequest{
		MatchID:   "match-1",
		PlayerIDs: env.ids,
	})
	require.NoError(t, err)
	require.NotNil(t, draw)
	assert.Len(t, env.repo.draws, 1)
	assert.Equal(t, 1, env.metrics.published[false])
}

func TestCreateDraw_SaveFailure(t *testing.T) {
	env := newTestEnv(t, 12)
	env.repo.err = errors.New("connection reset")

	_, err := env.app.CreateDraw(context.Background(), CreateDrawRequest{
		MatchID:   "match-1",
		PlayerIDs: env.ids,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save draw")
	assert.Empty(t, env.publisher.published)
}

func TestCreateDraw_UniqueUsesLatestDraw(t *testing.T) {
	env := newTestEnv(t, 12)
	ctx := context.Background()
	req := CreateDrawRequest{MatchID: "match-1", PlayerIDs: env.ids, Unique: true}

	first, err := env.app.CreateDraw(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, first.PreviousDrawID)

	second, err := env.app.CreateDraw(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, second.PreviousDrawID)
	assert.Equal(t, first.ID, *second.PreviousDrawID)
	assert.False(t, teamdraw.AreDrawsEqual(first.Teams, second.Teams))

	other, err := env.app.CreateDraw(ctx, CreateDrawRequest{MatchID: "match-2", PlayerIDs: env.ids, Unique: true})
	require.NoError(t, err)
	assert.Nil(t, other.PreviousDrawID)
	assert.Equal(t, []string{"unique", "unique", "unique"}, env.metrics.draws)
}

func TestGetLatestDraw(t *testing.T) {
	env := newTestEnv(t, 12)
	ctx := context.Background()

	_, err := env.app.GetLatestDraw(ctx, "match-1")
	assert.ErrorIs(t, err, ErrDrawNotFound)

	_, err = env.app.GetLatestDraw(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = env.app.CreateDraw(ctx, CreateDrawRequest{MatchID: "match-1", PlayerIDs: env.ids})
	require.NoError(t, err)
	created, err := env.app.CreateDraw(ctx, CreateDrawRequest{MatchID: "match-1", PlayerIDs: env.ids})
	require.NoError(t, err)

	latest, err := env.app.GetLatestDraw(ctx, "match-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, latest.ID)
}

func TestValidateSelection(t *testing.T) {
	env := newTestEnv(t, 6)

	v := env.app.ValidateSelection(5)
	assert.False(t, v.Valid)
	assert.Equal(t, 6, v.MinRequired)
	assert.NotEmpty(t, v.Message)

	v = env.app.ValidateSelection(6)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Message)
}

func TestPreviewTeams(t *testing.T) {
	env := newTestEnv(t, 6)

	tests := []struct {
		name           string
		count, perTeam int
		want           TeamPreview
	}{
		{
			name:  "fifteen players",
			count: 15,
			want: TeamPreview{NumTeams: 3, PerTeamLimit: 5, Overflow: 0,
				Colors: []models.TeamColor{models.TeamColorBlue, models.TeamColorRed, models.TeamColorGreen}},
		},
		{
			name:  "large pool",
			count: 24,
			want: TeamPreview{NumTeams: 4, PerTeamLimit: 6, Overflow: 0,
				Colors: []models.TeamColor{models.TeamColorBlue, models.TeamColorRed, models.TeamColorGreen, models.TeamColorYellow}},
		},
		{
			name:    "override overflows",
			count:   20,
			perTeam: 4,
			want: TeamPreview{NumTeams: 3, PerTeamLimit: 4, Overflow: 8,
				Colors: []models.TeamColor{models.TeamColorBlue, models.TeamColorRed, models.TeamColorGreen}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.app.PreviewTeams(tt.count, tt.perTeam)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}

	_, err := env.app.PreviewTeams(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = env.app.PreviewTeams(12, 3)
	assert.ErrorIs(t, err, teamdraw.ErrInvalidPlayersPerTeam)
}
