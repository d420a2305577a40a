package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/samber/lo"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	ListPlayers(ctx context.Context, ids []string) ([]models.Player, error)
}

// App resolves player selections against the directory
type App struct {
	repo PlayerRepository
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository) *App {
	return &App{repo: repo}
}

// SelectPlayers loads the selected players in selection order. Repeated IDs
// are collapsed; unknown IDs fail with ErrPlayerNotFound.
func (a *App) SelectPlayers(ctx context.Context, ids []string) ([]models.Player, error) {
	ids = lo.Uniq(lo.Without(ids, ""))
	if len(ids) == 0 {
		return nil, ErrNoPlayers
	}

	found, err := a.repo.ListPlayers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	byID := lo.KeyBy(found, func(p models.Player) string { return p.ID })
	missing := lo.Filter(ids, func(id string, _ int) bool {
		_, ok := byID[id]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, strings.Join(missing, ", "))
	}

	return lo.Map(ids, func(id string, _ int) models.Player { return byID[id] }), nil
}
