package memory

import (
	"context"

	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
)

// LeaderboardRepository reads boards out of the writer's committed sets, so a
// memory-backed process serves what it last computed.
type LeaderboardRepository struct {
	writer *SeasonWriter
}

func NewLeaderboardRepository(writer *SeasonWriter) *LeaderboardRepository {
	return &LeaderboardRepository{writer: writer}
}

func (r *LeaderboardRepository) ListBySeason(_ context.Context, seasonID string) ([]leaderboard.Board, error) {
	set, ok := r.writer.DocumentSet(seasonID)
	if !ok {
		return nil, nil
	}
	out := make([]leaderboard.Board, 0, len(set.Leaderboards))
	out = append(out, set.Leaderboards...)
	return out, nil
}
