package usecase

import (
	"strings"
	"testing"

	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
)

func TestEnrichEntry_SingleGameWar(t *testing.T) {
	t.Parallel()

	b := baseline.DailyBaseline{
		SeasonID:         "s1",
		Date:             "2025-11-01",
		MeanScore:        90,
		MedianScore:      100,
		ReplacementLevel: 81,
		WinThreshold:     92,
	}
	entry := gamelog.LineupEntry{GameID: "g1", PlayerID: "p1", Points: 100}

	got := EnrichEntry(entry, b)
	if !closeTo(got.AboveMean, 10) || got.AboveAvg != 1 {
		t.Fatalf("above-mean fields wrong: %+v", got)
	}
	if !closeTo(got.PctAboveMean, 10.0/90.0) {
		t.Fatalf("pct above mean = %v, want %v", got.PctAboveMean, 10.0/90.0)
	}
	// Exactly at the median does not count as above it.
	if !closeTo(got.AboveMedian, 0) || got.AboveMed != 0 {
		t.Fatalf("above-median fields wrong: %+v", got)
	}
	if !closeTo(got.SingleGameWar, (100.0-81.0)/92.0) {
		t.Fatalf("single game war = %v, want %v", got.SingleGameWar, (100.0-81.0)/92.0)
	}
}

func TestEnrichEntry_ZeroBaselineGuards(t *testing.T) {
	t.Parallel()

	got := EnrichEntry(gamelog.LineupEntry{Points: 40}, baseline.DailyBaseline{})
	if got.PctAboveMean != 0 || got.PctAboveMedian != 0 || got.SingleGameWar != 0 {
		t.Fatalf("zero baseline must yield zero ratios, got %+v", got)
	}
	if !closeTo(got.AboveMean, 40) || got.AboveAvg != 1 {
		t.Fatalf("differences still apply over a zero baseline: %+v", got)
	}
}

func TestValidateGameResults_SplitsBadRecords(t *testing.T) {
	t.Parallel()

	games := []gamelog.GameResult{
		{ID: "g1", SeasonID: "s1", Date: "2025-11-01", TeamOneID: "t1", TeamTwoID: "t2", Completed: true},
		{ID: "g2", SeasonID: "s1", TeamOneID: "t1", TeamTwoID: "t2"},
	}

	valid, skipped := ValidateGameResults(games)
	if len(valid) != 1 || valid[0].ID != "g1" {
		t.Fatalf("expected only g1 to survive, got %+v", valid)
	}
	if len(skipped) != 1 || skipped[0].Kind != "game" || skipped[0].ID != "g2" {
		t.Fatalf("skip report wrong: %+v", skipped)
	}
}

func TestValidateLineupEntries_DropsOrphansAndAdoptsPostseasonFlag(t *testing.T) {
	t.Parallel()

	games := []gamelog.GameResult{
		{ID: "g1", SeasonID: "s1", Date: "2025-11-01", TeamOneID: "t1", TeamTwoID: "t2", Completed: true, Postseason: true},
		{ID: "g2", SeasonID: "s1", Date: "2025-11-02", TeamOneID: "t1", TeamTwoID: "t2", Completed: false},
	}
	entries := []gamelog.LineupEntry{
		{GameID: "g1", PlayerID: "p1", TeamID: "t1", SeasonID: "s1", Date: "2025-11-01", Points: 50},
		{GameID: "g2", PlayerID: "p1", TeamID: "t1", SeasonID: "s1", Date: "2025-11-02", Points: 50},
		{GameID: "missing", PlayerID: "p1", TeamID: "t1", SeasonID: "s1", Date: "2025-11-01", Points: 50},
		{GameID: "g1", PlayerID: "p2", TeamID: "t2", SeasonID: "s1", Date: "2025-11-01", Points: -1},
	}

	valid, skipped := ValidateLineupEntries(entries, games)
	if len(valid) != 1 {
		t.Fatalf("expected one valid entry, got %+v", valid)
	}
	// The game record overrides whatever the entry carried.
	if !valid[0].Postseason {
		t.Fatalf("entry did not adopt the game's postseason flag: %+v", valid[0])
	}

	if len(skipped) != 3 {
		t.Fatalf("expected three skipped entries, got %+v", skipped)
	}
	reasons := make([]string, 0, len(skipped))
	for _, s := range skipped {
		if s.Kind != "lineup_entry" {
			t.Fatalf("unexpected skip kind: %+v", s)
		}
		reasons = append(reasons, s.Reason)
	}
	joined := strings.Join(reasons, "; ")
	for _, want := range []string{"not completed", "unknown game", "negative score"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing skip reason %q in %q", want, joined)
		}
	}
}

func TestEnrichEntries_MissingBaselineIsSkippedNotZeroed(t *testing.T) {
	t.Parallel()

	baselines := map[string]baseline.DailyBaseline{
		"2025-11-01": {Date: "2025-11-01", MeanScore: 50, MedianScore: 50, ReplacementLevel: 45, WinThreshold: 46},
	}
	entries := []gamelog.LineupEntry{
		{GameID: "g1", PlayerID: "p1", Date: "2025-11-01", Points: 60},
		{GameID: "g2", PlayerID: "p1", Date: "2025-11-08", Points: 60},
	}

	enriched, skipped := EnrichEntries(entries, baselines)
	if len(enriched) != 1 || enriched[0].GameID != "g1" {
		t.Fatalf("expected only the covered date to enrich, got %+v", enriched)
	}
	if len(skipped) != 1 || !strings.Contains(skipped[0].Reason, "no baseline for date 2025-11-08") {
		t.Fatalf("skip report wrong: %+v", skipped)
	}
}
