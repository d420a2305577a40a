package teamdraw

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	seedJitterRange   = 1000
	attemptSeedStride = seedJitterRange
)

// DrawRequest describes one draw.
type DrawRequest struct {
	Players []models.Player
	MatchID string
	// Seed fixes the randomness. Nil picks a fresh seed from the clock.
	Seed *int64
	// PlayersPerTeam overrides the derived capacity. Zero means derive it.
	PlayersPerTeam int
}

// Drawer runs team draws. It holds no per-draw state and is safe for
// concurrent use; draws for the same match must be serialized by the caller.
type Drawer struct {
	clock  clockwork.Clock
	jitter func() int64
	logger zerolog.Logger
	newID  func() uuid.UUID
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithClock sets the clock used for timestamps and fresh seeds.
func WithClock(clock clockwork.Clock) Option {
	return func(d *Drawer) { d.clock = clock }
}

// WithLogger sets the logger used for draw warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Drawer) { d.logger = logger }
}

// WithJitter sets the source of the random component added to fresh seeds.
func WithJitter(jitter func() int64) Option {
	return func(d *Drawer) { d.jitter = jitter }
}

// WithIDGenerator sets how draw IDs are generated.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(d *Drawer) { d.newID = newID }
}

// NewDrawer creates a Drawer with a real clock and the global logger.
func NewDrawer(opts ...Option) *Drawer {
	d := &Drawer{
		clock:  clockwork.NewRealClock(),
		jitter: func() int64 { return rand.Int64N(seedJitterRange) },
		logger: log.Logger,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewSeed derives a fresh seed from the clock plus jitter.
func (d *Drawer) NewSeed() int64 {
	return d.seedForAttempt(0)
}

func (d *Drawer) seedForAttempt(attempt int) int64 {
	return d.clock.Now().UnixMilli() + int64(attempt)*attemptSeedStride + d.jitter()
}

// Shuffle permutes a copy of players. A nil seed is replaced by a fresh one,
// which is returned so the permutation can be replayed.
func (d *Drawer) Shuffle(players []models.Player, seed *int64) ShuffleResult {
	if seed == nil {
		return SeededShuffle(players, d.NewSeed())
	}
	return SeededShuffle(players, *seed)
}

// PerformDraw normalizes ratings, shuffles, places goalkeepers and then
// balances the rest. A fixed seed always produces the same teams and stats.
func (d *Drawer) PerformDraw(req DrawRequest) (*models.DrawResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	seed := d.NewSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}
	return d.draw(req, seed), nil
}

// GenerateUniqueDraw draws until the teams differ from previous, trying at
// most maxAttempts fresh seeds. When every attempt matches, one more draw is
// returned with a warning rather than an error. req.Seed is ignored since
// every attempt needs its own seed.
func (d *Drawer) GenerateUniqueDraw(req DrawRequest, previous *models.DrawResult, maxAttempts int) (*models.DrawResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if previous == nil {
		return d.draw(req, d.NewSeed()), nil
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	previousID := previous.ID
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result := d.draw(req, d.seedForAttempt(attempt))
		result.PreviousDrawID = &previousID
		if !AreDrawsEqual(result.Teams, previous.Teams) {
			d.logger.Debug().
				Str("match_id", req.MatchID).
				Int("attempt", attempt+1).
				Int64("seed", result.Seed).
				Msg("found draw different from previous")
			return result, nil
		}
	}

	result := d.draw(req, d.seedForAttempt(maxAttempts))
	result.PreviousDrawID = &previousID
	d.logger.Warn().
		Str("match_id", req.MatchID).
		Str("previous_draw_id", previousID.String()).
		Int("max_attempts", maxAttempts).
		Int("players", len(req.Players)).
		Msg("could not find a different draw, returning last attempt")
	return result, nil
}

func (d *Drawer) draw(req DrawRequest, seed int64) *models.DrawResult {
	rng := NewSeededRand(seed)
	shuffled := shuffleWith(NormalizeRatings(req.Players), rng)

	numTeams := CalculateNumTeams(len(req.Players))
	capacity := req.PlayersPerTeam
	if capacity == 0 {
		capacity = CalculatePerTeamLimit(len(req.Players), numTeams)
	}

	builder := newTeamBuilder(models.TeamColorsFor(numTeams), capacity, rng)
	regular, unplacedKeepers := builder.allocateCritical(shuffled)
	unassigned := append(unplacedKeepers, builder.balance(regular)...)

	if len(unassigned) > 0 {
		d.logger.Warn().
			Str("match_id", req.MatchID).
			Int("unassigned", len(unassigned)).
			Int("teams", numTeams).
			Int("players_per_team", capacity).
			Msg("players exceed team capacity")
	}

	return &models.DrawResult{
		ID:                d.newID(),
		MatchID:           req.MatchID,
		Teams:             builder.assignment(),
		SelectedPlayerIDs: lo.Map(req.Players, func(p models.Player, _ int) string { return p.ID }),
		Seed:              seed,
		CreatedAt:         d.clock.Now().UTC(),
		Stats:             builder.stats(),
		Unassigned:        unassigned,
	}
}

func validateRequest(req DrawRequest) error {
	if req.PlayersPerTeam != 0 && !slices.Contains(AllowedPlayersPerTeam, req.PlayersPerTeam) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayersPerTeam, req.PlayersPerTeam)
	}

	seen := make(map[string]struct{}, len(req.Players))
	for i, p := range req.Players {
		if p.ID == "" {
			return fmt.Errorf("%w: player at index %d has no id", ErrInvalidPlayer, i)
		}
		if p.SkillRating < 0 || math.IsNaN(p.SkillRating) || math.IsInf(p.SkillRating, 0) {
			return fmt.Errorf("%w: player %s has rating %v", ErrInvalidPlayer, p.ID, p.SkillRating)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
