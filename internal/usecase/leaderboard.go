package usecase

import (
	"sort"

	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
)

// BuildLeaderboards produces the season's two flat single-game leaderboards:
// the top raw scores and the best global finish ranks. Secondary keys make the
// ordering fully deterministic so repeated runs emit identical boards.
func BuildLeaderboards(seasonID string, enriched []gamelog.EnrichedEntry) []leaderboard.Board {
	scores := append([]gamelog.EnrichedEntry(nil), enriched...)
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Points != scores[j].Points {
			return scores[i].Points > scores[j].Points
		}
		return entryKeyLess(scores[i], scores[j])
	})

	ranked := make([]gamelog.EnrichedEntry, 0, len(enriched))
	for _, entry := range enriched {
		if entry.GlobalRank > 0 {
			ranked = append(ranked, entry)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].GlobalRank != ranked[j].GlobalRank {
			return ranked[i].GlobalRank < ranked[j].GlobalRank
		}
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return entryKeyLess(ranked[i], ranked[j])
	})

	return []leaderboard.Board{
		{SeasonID: seasonID, Kind: leaderboard.KindTopScores, Entries: boardEntries(scores)},
		{SeasonID: seasonID, Kind: leaderboard.KindBestRanks, Entries: boardEntries(ranked)},
	}
}

func boardEntries(entries []gamelog.EnrichedEntry) []leaderboard.Entry {
	size := len(entries)
	if size > leaderboard.Size {
		size = leaderboard.Size
	}
	out := make([]leaderboard.Entry, 0, size)
	for i := 0; i < size; i++ {
		entry := entries[i]
		out = append(out, leaderboard.Entry{
			Position:   i + 1,
			GameID:     entry.GameID,
			PlayerID:   entry.PlayerID,
			TeamID:     entry.TeamID,
			Date:       entry.Date,
			Week:       entry.Week,
			Points:     entry.Points,
			GlobalRank: entry.GlobalRank,
		})
	}
	return out
}

func entryKeyLess(a, b gamelog.EnrichedEntry) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.GameID != b.GameID {
		return a.GameID < b.GameID
	}
	return a.PlayerID < b.PlayerID
}
