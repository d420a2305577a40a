package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mcdev12/pelada/go/internal/dbconfig"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const defaultRosterPath = "go/internal/tools/seed_players/roster.yaml"

type rosterPlayer struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Position    string   `yaml:"position"`
	SkillRating *float64 `yaml:"skill_rating"`
}

type roster struct {
	Players []rosterPlayer `yaml:"players"`
}

// parseRoster decodes a roster file and rejects entries the draw would refuse.
func parseRoster(data []byte) ([]rosterPlayer, error) {
	var r roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal roster: %w", err)
	}

	for i, p := range r.Players {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("player %d: id and name are required", i)
		}
		if p.SkillRating != nil && *p.SkillRating < 0 {
			return nil, fmt.Errorf("player %s: negative skill_rating", p.ID)
		}
	}

	dupes := lo.FindDuplicatesBy(r.Players, func(p rosterPlayer) string { return p.ID })
	if len(dupes) > 0 {
		return nil, fmt.Errorf("duplicate player id %q", dupes[0].ID)
	}
	return r.Players, nil
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	path := defaultRosterPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load roster
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read roster: %v\n", err)
		os.Exit(1)
	}
	players, err := parseRoster(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse roster: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect to DB
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Seed players
	total, inserted, skipped, errs := len(players), 0, 0, 0
	for _, p := range players {
		tag, err := pool.Exec(ctx, `
            INSERT INTO players (id, name, position, skill_rating)
            VALUES ($1,$2,NULLIF($3, ''),$4)
            ON CONFLICT (id) DO NOTHING
        `, p.ID, p.Name, p.Position, p.SkillRating)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert %s: %v\n", p.ID, err)
			errs++
			continue
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	goalkeepers := lo.CountBy(players, func(p rosterPlayer) bool {
		return models.RoleForPosition(p.Position) == models.RoleGoalkeeper
	})
	fmt.Printf(
		"Players seed: total=%d goalkeepers=%d inserted=%d skipped=%d errors=%d\n",
		total, goalkeepers, inserted, skipped, errs,
	)
}
