package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
	leaderboardmock "github.com/rkl-hq/season-engine/internal/mocks/domain/leaderboard"
	"github.com/stretchr/testify/mock"
)

func TestLeaderboardService_GetBoard_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := leaderboardmock.NewRepository(t)
	service := NewLeaderboardService(repo, nil)

	seasonID := "krl-2026"
	boards := []leaderboard.Board{
		{SeasonID: seasonID, Kind: leaderboard.KindTopScores, Entries: []leaderboard.Entry{
			{Position: 1, PlayerID: "p-9", Points: 51230},
		}},
		{SeasonID: seasonID, Kind: leaderboard.KindBestRanks, Entries: []leaderboard.Entry{
			{Position: 1, PlayerID: "p-4", GlobalRank: 2},
		}},
	}

	repo.
		On("ListBySeason", mock.Anything, seasonID).
		Return(boards, nil).
		Once()

	got, err := service.GetBoard(ctx, seasonID, leaderboard.KindBestRanks)
	if err != nil {
		t.Fatalf("get board: %v", err)
	}
	if got.Kind != leaderboard.KindBestRanks {
		t.Fatalf("unexpected kind: got=%s", got.Kind)
	}
	if len(got.Entries) != 1 || got.Entries[0].PlayerID != "p-4" {
		t.Fatalf("unexpected entries: %+v", got.Entries)
	}
}

func TestLeaderboardService_GetBoard_UnknownKindUsingMockery(t *testing.T) {
	t.Parallel()

	repo := leaderboardmock.NewRepository(t)
	service := NewLeaderboardService(repo, nil)

	_, err := service.GetBoard(context.Background(), "krl-2026", leaderboard.Kind("bogus"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeaderboardService_GetBoard_MissingBoardUsingMockery(t *testing.T) {
	t.Parallel()

	repo := leaderboardmock.NewRepository(t)
	service := NewLeaderboardService(repo, nil)

	repo.
		On("ListBySeason", mock.Anything, "krl-2026").
		Return(nil, nil).
		Once()

	_, err := service.GetBoard(context.Background(), "krl-2026", leaderboard.KindTopScores)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
