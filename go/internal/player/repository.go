package player

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/pelada/go/internal/models"
)

// Querier is the subset of pgxpool.Pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type playerRow struct {
	ID          string   `db:"id"`
	Name        string   `db:"name"`
	Position    *string  `db:"position"`
	SkillRating *float64 `db:"skill_rating"`
}

// Repository reads group members from the players table.
type Repository struct {
	db Querier
}

func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

const listPlayersByIDs = `
SELECT id, name, position, skill_rating
FROM players
WHERE id = ANY($1)
`

// ListPlayers returns the players whose IDs are in ids, in no particular order.
func (r *Repository) ListPlayers(ctx context.Context, ids []string) ([]models.Player, error) {
	rows, err := r.db.Query(ctx, listPlayersByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}

	dbRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[playerRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan players: %w", err)
	}

	players := make([]models.Player, 0, len(dbRows))
	for _, row := range dbRows {
		players = append(players, rowToModel(row))
	}
	return players, nil
}

func rowToModel(row playerRow) models.Player {
	p := models.Player{
		ID:   row.ID,
		Name: row.Name,
	}
	if row.Position != nil {
		p.Position = *row.Position
	}
	if row.SkillRating != nil {
		p.SkillRating = *row.SkillRating
	}
	return p
}
