package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	qb "github.com/rkl-hq/season-engine/internal/platform/querybuilder"
)

type GameLogRepository struct {
	db *sqlx.DB
}

func NewGameLogRepository(db *sqlx.DB) *GameLogRepository {
	return &GameLogRepository{db: db}
}

func (r *GameLogRepository) ListGamesBySeason(ctx context.Context, seasonID string) ([]gamelog.GameResult, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("game_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by season query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games by season: %w", err)
	}

	out := make([]gamelog.GameResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamelog.GameResult{
			ID:           row.ID,
			SeasonID:     row.SeasonID,
			Date:         row.GameDate,
			Week:         row.Week,
			TeamOneID:    row.TeamOneID,
			TeamTwoID:    row.TeamTwoID,
			TeamOneScore: row.TeamOneScore.Float64,
			TeamTwoScore: row.TeamTwoScore.Float64,
			WinnerID:     row.WinnerID.String,
			Completed:    row.Completed,
			Postseason:   row.Postseason,
		})
	}

	return out, nil
}

func (r *GameLogRepository) ListLineupEntriesBySeason(ctx context.Context, seasonID string) ([]gamelog.LineupEntry, error) {
	query, args, err := qb.Select("*").From("lineup_entries").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("game_date", "game_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select lineup entries by season query: %w", err)
	}

	var rows []lineupEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lineup entries by season: %w", err)
	}

	out := make([]gamelog.LineupEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamelog.LineupEntry{
			GameID:     row.GameID,
			PlayerID:   row.PlayerID,
			TeamID:     row.TeamID,
			SeasonID:   row.SeasonID,
			Date:       row.GameDate,
			Week:       row.Week,
			Started:    row.Started,
			IsCaptain:  row.IsCaptain,
			Points:     row.Points,
			GlobalRank: row.GlobalRank,
			Postseason: row.Postseason,
		})
	}

	return out, nil
}
