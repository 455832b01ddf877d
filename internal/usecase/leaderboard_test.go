package usecase

import (
	"testing"

	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
)

func TestBuildLeaderboards_TwoBoards(t *testing.T) {
	t.Parallel()

	entries := []gamelog.EnrichedEntry{
		enriched("p1", "t1", "g1", "2025-11-01", 90, 4, false),
		enriched("p2", "t2", "g1", "2025-11-01", 120, 0, false),
		enriched("p3", "t1", "g2", "2025-11-08", 70, 31, false),
	}

	boards := BuildLeaderboards("s1", entries)
	if len(boards) != 2 {
		t.Fatalf("expected two boards, got %d", len(boards))
	}

	scores := boards[0]
	if scores.Kind != leaderboard.KindTopScores || scores.SeasonID != "s1" {
		t.Fatalf("first board wrong: %+v", scores)
	}
	if len(scores.Entries) != 3 {
		t.Fatalf("top scores board size = %d, want 3", len(scores.Entries))
	}
	if scores.Entries[0].PlayerID != "p2" || scores.Entries[0].Position != 1 {
		t.Fatalf("highest score not first: %+v", scores.Entries[0])
	}

	ranks := boards[1]
	if ranks.Kind != leaderboard.KindBestRanks {
		t.Fatalf("second board wrong: %+v", ranks)
	}
	// The unranked entry never appears on the rank board.
	if len(ranks.Entries) != 2 {
		t.Fatalf("best ranks board size = %d, want 2", len(ranks.Entries))
	}
	if ranks.Entries[0].PlayerID != "p1" || ranks.Entries[0].GlobalRank != 4 {
		t.Fatalf("best rank not first: %+v", ranks.Entries[0])
	}
}
