package usecase

import (
	"context"
	"fmt"

	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
)

// LeaderboardService serves the persisted leaderboard documents for a season.
type LeaderboardService struct {
	repo   leaderboard.Repository
	logger *logging.Logger
}

func NewLeaderboardService(repo leaderboard.Repository, logger *logging.Logger) *LeaderboardService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LeaderboardService{repo: repo, logger: logger}
}

func (s *LeaderboardService) ListBySeason(ctx context.Context, seasonID string) ([]leaderboard.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.ListBySeason")
	defer span.End()

	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	boards, err := s.repo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list leaderboards: %w", err)
	}
	return boards, nil
}

func (s *LeaderboardService) GetBoard(ctx context.Context, seasonID string, kind leaderboard.Kind) (leaderboard.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetBoard")
	defer span.End()

	if kind != leaderboard.KindTopScores && kind != leaderboard.KindBestRanks {
		return leaderboard.Board{}, fmt.Errorf("%w: unknown leaderboard kind %q", ErrInvalidInput, kind)
	}

	boards, err := s.ListBySeason(ctx, seasonID)
	if err != nil {
		return leaderboard.Board{}, err
	}
	for _, board := range boards {
		if board.Kind == kind {
			return board, nil
		}
	}
	return leaderboard.Board{}, fmt.Errorf("%w: leaderboard %s for season %s", ErrNotFound, kind, seasonID)
}
