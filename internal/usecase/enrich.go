package usecase

import (
	"fmt"

	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
)

// SkippedRecord reports one malformed raw record dropped from a run. A bad
// record never aborts the season's computation.
type SkippedRecord struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ValidateGameResults splits raw game records into usable and skipped.
func ValidateGameResults(games []gamelog.GameResult) ([]gamelog.GameResult, []SkippedRecord) {
	valid := make([]gamelog.GameResult, 0, len(games))
	var skipped []SkippedRecord
	for _, game := range games {
		if err := game.Validate(); err != nil {
			skipped = append(skipped, SkippedRecord{Kind: "game", ID: game.ID, Reason: err.Error()})
			continue
		}
		valid = append(valid, game)
	}
	return valid, skipped
}

// ValidateLineupEntries splits raw lineup entries into usable and skipped.
// Entries referencing a game outside the provided set, or an incomplete game,
// are dropped as well: derived stats only exist for finished games.
func ValidateLineupEntries(entries []gamelog.LineupEntry, games []gamelog.GameResult) ([]gamelog.LineupEntry, []SkippedRecord) {
	gameByID := make(map[string]gamelog.GameResult, len(games))
	for _, game := range games {
		gameByID[game.ID] = game
	}

	valid := make([]gamelog.LineupEntry, 0, len(entries))
	var skipped []SkippedRecord
	for _, entry := range entries {
		id := entry.GameID + "/" + entry.PlayerID
		if err := entry.Validate(); err != nil {
			skipped = append(skipped, SkippedRecord{Kind: "lineup_entry", ID: id, Reason: err.Error()})
			continue
		}
		game, exists := gameByID[entry.GameID]
		if !exists {
			skipped = append(skipped, SkippedRecord{Kind: "lineup_entry", ID: id, Reason: fmt.Sprintf("unknown game %s", entry.GameID)})
			continue
		}
		if !game.Completed {
			skipped = append(skipped, SkippedRecord{Kind: "lineup_entry", ID: id, Reason: fmt.Sprintf("game %s is not completed", entry.GameID)})
			continue
		}
		// The game record is authoritative for the postseason flag.
		entry.Postseason = game.Postseason
		valid = append(valid, entry)
	}
	return valid, skipped
}

// EnrichEntry computes an entry's per-game derived metrics against its date's
// baseline and returns a copy; the input is never mutated. Recomputation with
// identical inputs reproduces identical values.
func EnrichEntry(entry gamelog.LineupEntry, b baseline.DailyBaseline) gamelog.EnrichedEntry {
	aboveMean := entry.Points - b.MeanScore
	aboveMedian := entry.Points - b.MedianScore

	out := gamelog.EnrichedEntry{
		LineupEntry:    entry,
		AboveMean:      aboveMean,
		PctAboveMean:   guardedRatio(aboveMean, b.MeanScore),
		AboveMedian:    aboveMedian,
		PctAboveMedian: guardedRatio(aboveMedian, b.MedianScore),
		SingleGameWar:  guardedRatio(entry.Points-b.ReplacementLevel, b.WinThreshold),
	}
	if aboveMean > 0 {
		out.AboveAvg = 1
	}
	if aboveMedian > 0 {
		out.AboveMed = 1
	}
	return out
}

// EnrichEntries enriches every validated entry against its date's baseline.
// The two inputs come from the same validated set, so a missing baseline is a
// shape fault and the entry is skipped rather than silently zeroed.
func EnrichEntries(entries []gamelog.LineupEntry, baselines map[string]baseline.DailyBaseline) ([]gamelog.EnrichedEntry, []SkippedRecord) {
	out := make([]gamelog.EnrichedEntry, 0, len(entries))
	var skipped []SkippedRecord
	for _, entry := range entries {
		b, exists := baselines[entry.Date]
		if !exists {
			skipped = append(skipped, SkippedRecord{
				Kind:   "lineup_entry",
				ID:     entry.GameID + "/" + entry.PlayerID,
				Reason: fmt.Sprintf("no baseline for date %s", entry.Date),
			})
			continue
		}
		out = append(out, EnrichEntry(entry, b))
	}
	return out, skipped
}
