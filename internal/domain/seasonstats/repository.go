package seasonstats

import (
	"context"

	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/leaderboard"
)

// DocumentSet is everything one aggregation pass derives for a season. The
// whole set is handed to the writer as one logical unit; slices arrive in a
// deterministic order so that re-running an identical pass produces identical
// writes.
type DocumentSet struct {
	SeasonID        string
	Entries         []gamelog.EnrichedEntry
	Baselines       []baseline.DailyBaseline
	TeamDailyScores []baseline.TeamDailyScore
	Players         []PlayerSeason
	Teams           []TeamSeason
	Leaderboards    []leaderboard.Board
}

// Writer commits a season's derived documents in bounded-size atomic batches.
// Batches are individually atomic but their union is not; callers recover from
// a partial failure by re-running the whole (idempotent) aggregation.
type Writer interface {
	WriteDocumentSet(ctx context.Context, set DocumentSet) error
}
