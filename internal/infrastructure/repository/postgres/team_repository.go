package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rkl-hq/season-engine/internal/domain/team"
	qb "github.com/rkl-hq/season-engine/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListBySeason(ctx context.Context, seasonID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by season query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by season: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:         row.ID,
			SeasonID:   row.SeasonID,
			Name:       row.Name,
			Conference: row.Conference.String,
		})
	}

	return out, nil
}
