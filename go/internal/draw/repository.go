package draw

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
	"github.com/sqlc-dev/pqtype"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db DBTX
}

func newQueries(tx *sql.Tx) *queries {
	return &queries{db: tx}
}

// drawRow mirrors one row of the draws table.
type drawRow struct {
	ID                uuid.UUID
	MatchID           string
	PreviousDrawID    uuid.NullUUID
	Seed              int64
	SelectedPlayerIDs []string
	Teams             []byte
	Stats             []byte
	Unassigned        pqtype.NullRawMessage
	CreatedAt         time.Time
}

const insertDraw = `
INSERT INTO draws (
  id, match_id, previous_draw_id, seed, selected_player_ids, teams, stats, unassigned, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`

const insertAssignment = `
INSERT INTO draw_assignments (
  draw_id, player_id, team_color, pick_order, skill_rating
) VALUES ($1,$2,$3,$4,$5)
`

const getLatestDraw = `
SELECT id, match_id, previous_draw_id, seed, selected_player_ids, teams, stats, unassigned, created_at
FROM draws
WHERE match_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`

func (q *queries) insertDraw(ctx context.Context, row drawRow) error {
	_, err := q.db.ExecContext(ctx, insertDraw,
		row.ID, row.MatchID, row.PreviousDrawID, row.Seed, pq.Array(row.SelectedPlayerIDs),
		row.Teams, row.Stats, row.Unassigned, row.CreatedAt,
	)
	return err
}

func (q *queries) insertAssignment(ctx context.Context, drawID uuid.UUID, color models.TeamColor, order int, p models.Player) error {
	_, err := q.db.ExecContext(ctx, insertAssignment, drawID, p.ID, string(color), order, p.SkillRating)
	return err
}

func (q *queries) getLatestDraw(ctx context.Context, matchID string) (drawRow, error) {
	var row drawRow
	err := q.db.QueryRowContext(ctx, getLatestDraw, matchID).Scan(
		&row.ID, &row.MatchID, &row.PreviousDrawID, &row.Seed, pq.Array(&row.SelectedPlayerIDs),
		&row.Teams, &row.Stats, &row.Unassigned, &row.CreatedAt,
	)
	return row, err
}

// Repository stores draws in Postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveDraw stores the draw and one assignment row per placed player in a
// single transaction.
func (r *Repository) SaveDraw(ctx context.Context, draw *models.DrawResult) error {
	row, err := drawToRow(draw)
	if err != nil {
		return err
	}

	err = sqlutil.Run(ctx, r.db, newQueries, func(q *queries) error {
		if err := q.insertDraw(ctx, row); err != nil {
			return fmt.Errorf("insert draw: %w", err)
		}
		for _, color := range models.AllTeamColors {
			bucket, ok := draw.Teams[color]
			if !ok {
				continue
			}
			for i, p := range bucket.Players {
				if err := q.insertAssignment(ctx, draw.ID, color, i, p); err != nil {
					return fmt.Errorf("insert assignment for %s: %w", p.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save draw: %w", err)
	}
	return nil
}

// GetLatestDraw returns the newest draw for matchID or ErrDrawNotFound.
func (r *Repository) GetLatestDraw(ctx context.Context, matchID string) (*models.DrawResult, error) {
	row, err := (&queries{db: r.db}).getLatestDraw(ctx, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDrawNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draw: %w", err)
	}
	return rowToDraw(row)
}

func drawToRow(draw *models.DrawResult) (drawRow, error) {
	teams, err := json.Marshal(draw.Teams)
	if err != nil {
		return drawRow{}, fmt.Errorf("failed to marshal teams: %w", err)
	}
	stats, err := json.Marshal(draw.Stats)
	if err != nil {
		return drawRow{}, fmt.Errorf("failed to marshal stats: %w", err)
	}
	unassigned, err := sqlutil.ToNullRawMessage(draw.Unassigned)
	if err != nil {
		return drawRow{}, fmt.Errorf("failed to marshal unassigned players: %w", err)
	}

	return drawRow{
		ID:                draw.ID,
		MatchID:           draw.MatchID,
		PreviousDrawID:    sqlutil.ToNullUUID(draw.PreviousDrawID),
		Seed:              draw.Seed,
		SelectedPlayerIDs: draw.SelectedPlayerIDs,
		Teams:             teams,
		Stats:             stats,
		Unassigned:        unassigned,
		CreatedAt:         draw.CreatedAt,
	}, nil
}

func rowToDraw(row drawRow) (*models.DrawResult, error) {
	draw := &models.DrawResult{
		ID:                row.ID,
		MatchID:           row.MatchID,
		PreviousDrawID:    sqlutil.FromNullUUID(row.PreviousDrawID),
		Seed:              row.Seed,
		SelectedPlayerIDs: row.SelectedPlayerIDs,
		CreatedAt:         row.CreatedAt.UTC(),
	}
	if err := json.Unmarshal(row.Teams, &draw.Teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal teams: %w", err)
	}
	if err := json.Unmarshal(row.Stats, &draw.Stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	unassigned, err := sqlutil.FromNullRawMessage[models.Player](row.Unassigned)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal unassigned players: %w", err)
	}
	draw.Unassigned = unassigned
	return draw, nil
}
