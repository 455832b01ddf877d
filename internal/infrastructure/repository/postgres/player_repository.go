package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rkl-hq/season-engine/internal/domain/player"
	qb "github.com/rkl-hq/season-engine/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListBySeason(ctx context.Context, seasonID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by season query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by season: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:       row.ID,
			SeasonID: row.SeasonID,
			Name:     row.Name,
			Rookie:   row.Rookie,
			AllStar:  row.AllStar,
		})
	}

	return out, nil
}
