package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
	qb "github.com/rkl-hq/season-engine/internal/platform/querybuilder"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) ListBySeason(ctx context.Context, seasonID string) ([]leaderboard.Board, error) {
	query, args, err := qb.Select("*").From("leaderboard_entries").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("kind", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leaderboard entries query: %w", err)
	}

	var rows []leaderboardEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaderboard entries: %w", err)
	}

	boardsByKind := make(map[leaderboard.Kind]*leaderboard.Board)
	order := make([]leaderboard.Kind, 0, 2)
	for _, row := range rows {
		kind := leaderboard.Kind(row.Kind)
		board, ok := boardsByKind[kind]
		if !ok {
			board = &leaderboard.Board{SeasonID: row.SeasonID, Kind: kind}
			boardsByKind[kind] = board
			order = append(order, kind)
		}
		board.Entries = append(board.Entries, leaderboard.Entry{
			Position:   row.Position,
			GameID:     row.GameID,
			PlayerID:   row.PlayerID,
			TeamID:     row.TeamID,
			Date:       row.GameDate,
			Week:       row.Week,
			Points:     row.Points,
			GlobalRank: row.GlobalRank,
		})
	}

	out := make([]leaderboard.Board, 0, len(order))
	for _, kind := range order {
		out = append(out, *boardsByKind[kind])
	}
	return out, nil
}
