package draw

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pelada/go/internal/metrics"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/teamdraw"
	"github.com/rs/zerolog/log"
)

// PlayerSelector resolves selected player IDs into player records
type PlayerSelector interface {
	SelectPlayers(ctx context.Context, ids []string) ([]models.Player, error)
}

// DrawRepository defines what the app layer needs from the repository
type DrawRepository interface {
	SaveDraw(ctx context.Context, draw *models.DrawResult) error
	GetLatestDraw(ctx context.Context, matchID string) (*models.DrawResult, error)
}

// EventPublisher announces stored draws
type EventPublisher interface {
	PublishDrawCreated(ctx context.Context, draw *models.DrawResult) error
}

// Config holds the group policies applied before drawing.
type Config struct {
	MinPlayers  int
	MaxAttempts int
}

func DefaultConfig() Config {
	return Config{
		MinPlayers:  teamdraw.MinPlayers,
		MaxAttempts: teamdraw.DefaultMaxAttempts,
	}
}

// App handles draw business logic. It does not serialize draws for the same
// match; callers that need that guarantee must lock around CreateDraw.
type App struct {
	players   PlayerSelector
	repo      DrawRepository
	publisher EventPublisher
	drawer    *teamdraw.Drawer
	metrics   metrics.Collector
	config    Config
	clock     clockwork.Clock
}

// AppOption customizes an App.
type AppOption func(*App)

// WithClock sets the clock draw latency is measured with.
func WithClock(clock clockwork.Clock) AppOption {
	return func(a *App) { a.clock = clock }
}

// NewApp creates a new draw App
func NewApp(players PlayerSelector, repo DrawRepository, publisher EventPublisher, drawer *teamdraw.Drawer, collector metrics.Collector, config Config, opts ...AppOption) *App {
	if collector == nil {
		collector = metrics.NoOp{}
	}
	a := &App{
		players:   players,
		repo:      repo,
		publisher: publisher,
		drawer:    drawer,
		metrics:   collector,
		config:    config,
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CreateDraw loads the selection, draws teams, stores the result and
// announces it. A failed announcement is logged but does not fail the draw.
func (a *App) CreateDraw(ctx context.Context, req CreateDrawRequest) (*models.DrawResult, error) {
	start := a.clock.Now()
	mode := req.mode()

	result, err := a.createDraw(ctx, req)
	if err != nil {
		a.metrics.RecordDrawFailure(mode)
		return nil, err
	}

	if err := a.publisher.PublishDrawCreated(ctx, result); err != nil {
		a.metrics.RecordPublish("DrawCreated", false)
		log.Error().
			Err(err).
			Str("match_id", result.MatchID).
			Str("draw_id", result.ID.String()).
			Msg("failed to publish DrawCreated event")
	} else {
		a.metrics.RecordPublish("DrawCreated", true)
	}

	a.metrics.RecordDraw(mode, len(result.Teams), len(result.Unassigned), result.Stats.Variance, a.clock.Since(start))

	log.Info().
		Str("match_id", result.MatchID).
		Str("draw_id", result.ID.String()).
		Str("mode", mode).
		Int64("seed", result.Seed).
		Int("teams", len(result.Teams)).
		Float64("variance", result.Stats.Variance).
		Msg("created draw")

	return result, nil
}

func (a *App) createDraw(ctx context.Context, req CreateDrawRequest) (*models.DrawResult, error) {
	if err := a.validateCreateDrawRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	players, err := a.players.SelectPlayers(ctx, req.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to select players: %w", err)
	}

	if v := teamdraw.ValidatePlayerCount(len(players), a.config.MinPlayers); !v.Valid {
		return nil, fmt.Errorf("%w: %s", ErrNotEnoughPlayers, v.Message)
	}

	drawReq := teamdraw.DrawRequest{
		Players:        players,
		MatchID:        req.MatchID,
		Seed:           req.Seed,
		PlayersPerTeam: req.PlayersPerTeam,
	}

	var result *models.DrawResult
	if req.Unique {
		previous, err := a.latestOrNil(ctx, req.MatchID)
		if err != nil {
			return nil, err
		}
		result, err = a.drawer.GenerateUniqueDraw(drawReq, previous, a.config.MaxAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to draw teams: %w", err)
		}
	} else {
		result, err = a.drawer.PerformDraw(drawReq)
		if err != nil {
			return nil, fmt.Errorf("failed to draw teams: %w", err)
		}
	}

	if err := a.repo.SaveDraw(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save draw: %w", err)
	}
	return result, nil
}

func (a *App) latestOrNil(ctx context.Context, matchID string) (*models.DrawResult, error) {
	previous, err := a.repo.GetLatestDraw(ctx, matchID)
	if errors.Is(err, ErrDrawNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load previous draw: %w", err)
	}
	return previous, nil
}

// GetLatestDraw returns the most recent draw stored for a match
func (a *App) GetLatestDraw(ctx context.Context, matchID string) (*models.DrawResult, error) {
	if matchID == "" {
		return nil, fmt.Errorf("validation failed: %w: match_id is required", ErrInvalidRequest)
	}
	draw, err := a.repo.GetLatestDraw(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draw: %w", err)
	}
	return draw, nil
}

// ValidateSelection checks a selection size against the group minimum
func (a *App) ValidateSelection(playerCount int) teamdraw.SelectionValidation {
	return teamdraw.ValidatePlayerCount(playerCount, a.config.MinPlayers)
}

// PreviewTeams reports how a pool of playerCount would be split
func (a *App) PreviewTeams(playerCount, playersPerTeam int) (*TeamPreview, error) {
	if playerCount < 0 {
		return nil, fmt.Errorf("validation failed: %w: player_count must not be negative", ErrInvalidRequest)
	}
	if err := validatePlayersPerTeam(playersPerTeam); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	numTeams := teamdraw.CalculateNumTeams(playerCount)
	limit := playersPerTeam
	if limit == 0 {
		limit = teamdraw.CalculatePerTeamLimit(playerCount, numTeams)
	}

	return &TeamPreview{
		NumTeams:     numTeams,
		PerTeamLimit: limit,
		Colors:       models.TeamColorsFor(numTeams),
		Overflow:     max(0, playerCount-numTeams*limit),
	}, nil
}

func (a *App) validateCreateDrawRequest(req CreateDrawRequest) error {
	if req.MatchID == "" {
		return fmt.Errorf("%w: match_id is required", ErrInvalidRequest)
	}
	if len(req.PlayerIDs) == 0 {
		return fmt.Errorf("%w: player_ids is required", ErrInvalidRequest)
	}
	if req.Unique && req.Seed != nil {
		return fmt.Errorf("%w: seed cannot be combined with unique", ErrInvalidRequest)
	}
	return validatePlayersPerTeam(req.PlayersPerTeam)
}

func validatePlayersPerTeam(n int) error {
	if n != 0 && !slices.Contains(teamdraw.AllowedPlayersPerTeam, n) {
		return fmt.Errorf("%w: %w: %d", ErrInvalidRequest, teamdraw.ErrInvalidPlayersPerTeam, n)
	}
	return nil
}
