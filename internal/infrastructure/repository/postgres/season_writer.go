package postgres

import (
	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
	qb "github.com/rkl-hq/season-engine/internal/platform/querybuilder"
)

const defaultWriteBatchSize = 400

// SeasonWriter persists a season's derived documents as delete-then-insert,
// chunked into transactions of at most batchSize statements. Each transaction
// is atomic; the set as a whole is not. A failed run leaves the season
// partially rewritten, which the caller recovers from by re-running the
// (idempotent) aggregation.
type SeasonWriter struct {
	db        *sqlx.DB
	batchSize int
	logger    *logging.Logger
}

func NewSeasonWriter(db *sqlx.DB, batchSize int, logger *logging.Logger) *SeasonWriter {
	if batchSize <= 0 {
		batchSize = defaultWriteBatchSize
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SeasonWriter{db: db, batchSize: batchSize, logger: logger}
}

type writeStatement struct {
	query string
	args  []any
}

func (w *SeasonWriter) WriteDocumentSet(ctx context.Context, set seasonstats.DocumentSet) error {
	if set.SeasonID == "" {
		return crerr.New("document set is missing season id")
	}

	statements, err := buildSeasonStatements(set)
	if err != nil {
		return crerr.Wrap(err, "build season statements")
	}

	batches := 0
	for start := 0; start < len(statements); start += w.batchSize {
		end := start + w.batchSize
		if end > len(statements) {
			end = len(statements)
		}
		if err := w.execBatch(ctx, statements[start:end]); err != nil {
			return crerr.Wrapf(err, "season %s batch %d", set.SeasonID, batches)
		}
		batches++
	}

	w.logger.InfoContext(ctx, "season document set committed",
		"season_id", set.SeasonID,
		"statements", len(statements),
		"batches", batches,
	)
	return nil
}

func (w *SeasonWriter) execBatch(ctx context.Context, statements []writeStatement) error {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin transaction")
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			_ = tx.Rollback()
			return crerr.Wrapf(err, "exec %q", stmt.query)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit transaction")
	}
	return nil
}

// buildSeasonStatements emits deletes for every derived table first, then the
// inserts in the document set's deterministic order. Delete-then-insert keeps
// rows for entities that vanished from the source data from surviving a
// recompute.
func buildSeasonStatements(set seasonstats.DocumentSet) ([]writeStatement, error) {
	derivedTables := []string{
		"lineup_entry_metrics",
		"daily_baselines",
		"team_daily_scores",
		"player_seasons",
		"team_seasons",
		"leaderboard_entries",
	}

	statements := make([]writeStatement, 0, len(derivedTables)+documentCount(set))
	for _, table := range derivedTables {
		query, args, err := qb.DeleteFrom(table).
			Where(qb.Eq("season_id", set.SeasonID)).
			ToSQL()
		if err != nil {
			return nil, crerr.Wrapf(err, "build delete from %s", table)
		}
		statements = append(statements, writeStatement{query: query, args: args})
	}

	for _, entry := range set.Entries {
		query, args, err := qb.InsertInto("lineup_entry_metrics").
			Columns(
				"season_id", "game_id", "player_id", "team_id", "game_date", "week",
				"started", "is_captain", "points", "global_rank", "postseason",
				"above_mean", "above_avg", "pct_above_mean",
				"above_median", "above_med", "pct_above_median",
				"single_game_war",
			).
			Values(
				entry.SeasonID, entry.GameID, entry.PlayerID, entry.TeamID, entry.Date, entry.Week,
				entry.Started, entry.IsCaptain, entry.Points, entry.GlobalRank, entry.Postseason,
				entry.AboveMean, entry.AboveAvg, entry.PctAboveMean,
				entry.AboveMedian, entry.AboveMed, entry.PctAboveMedian,
				entry.SingleGameWar,
			).
			ToSQL()
		if err != nil {
			return nil, crerr.Wrap(err, "build insert lineup entry metrics")
		}
		statements = append(statements, writeStatement{query: query, args: args})
	}

	for _, b := range set.Baselines {
		query, args, err := qb.InsertInto("daily_baselines").
			Columns(
				"season_id", "game_date", "week", "total_players",
				"mean_score", "median_score", "replacement_level", "win_threshold",
			).
			Values(
				b.SeasonID, b.Date, b.Week, b.TotalPlayers,
				b.MeanScore, b.MedianScore, b.ReplacementLevel, b.WinThreshold,
			).
			ToSQL()
		if err != nil {
			return nil, crerr.Wrap(err, "build insert daily baseline")
		}
		statements = append(statements, writeStatement{query: query, args: args})
	}

	for _, row := range set.TeamDailyScores {
		query, args, err := qb.InsertInto("team_daily_scores").
			Columns(
				"season_id", "team_id", "game_id", "game_date", "week",
				"score", "daily_median", "above_median", "points_above_median",
				"pct_above_median", "postseason",
			).
			Values(
				row.SeasonID, row.TeamID, row.GameID, row.Date, row.Week,
				row.Score, row.DailyMedian, row.AboveMedian, row.PointsAboveMedian,
				row.PctAboveMedian, row.Postseason,
			).
			ToSQL()
		if err != nil {
			return nil, crerr.Wrap(err, "build insert team daily score")
		}
		statements = append(statements, writeStatement{query: query, args: args})
	}

	for _, p := range set.Players {
		stmt, err := buildPlayerSeasonInsert(p)
		if err != nil {
			return nil, crerr.Wrapf(err, "build insert player season %s", p.PlayerID)
		}
		statements = append(statements, stmt)
	}

	for _, t := range set.Teams {
		query, args, err := qb.InsertInto("team_seasons").
			Columns(
				"season_id", "team_id", "name", "conference",
				"wins", "losses", "win_pct", "pam", "avg_pct_pam",
				"med_starter_rank", "sort_score", "max_potential_wins",
				"msr_rank", "pam_rank",
			).
			Values(
				t.SeasonID, t.TeamID, t.Name, t.Conference,
				t.Wins, t.Losses, t.WinPct, t.PAM, t.AvgPctPAM,
				t.MedStarterRank, t.SortScore, t.MaxPotentialWins,
				t.MSRRank, t.PAMRank,
			).
			ToSQL()
		if err != nil {
			return nil, crerr.Wrapf(err, "build insert team season %s", t.TeamID)
		}
		statements = append(statements, writeStatement{query: query, args: args})
	}

	for _, board := range set.Leaderboards {
		for _, entry := range board.Entries {
			query, args, err := qb.InsertInto("leaderboard_entries").
				Columns(
					"season_id", "kind", "position", "game_id", "player_id",
					"team_id", "game_date", "week", "points", "global_rank",
				).
				Values(
					board.SeasonID, string(board.Kind), entry.Position, entry.GameID, entry.PlayerID,
					entry.TeamID, entry.Date, entry.Week, entry.Points, entry.GlobalRank,
				).
				ToSQL()
			if err != nil {
				return nil, crerr.Wrapf(err, "build insert leaderboard entry kind=%s", board.Kind)
			}
			statements = append(statements, writeStatement{query: query, args: args})
		}
	}

	return statements, nil
}

func buildPlayerSeasonInsert(p seasonstats.PlayerSeason) (writeStatement, error) {
	ranksJSON, err := sonic.Marshal(p.Ranks)
	if err != nil {
		return writeStatement{}, crerr.Wrap(err, "marshal ranks")
	}

	columns := []string{"season_id", "player_id", "name", "rookie", "all_star"}
	values := []any{p.SeasonID, p.PlayerID, p.Name, p.Rookie, p.AllStar}

	appendSplit := func(prefix string, s seasonstats.SplitStats) {
		columns = append(columns,
			prefix+"games_played", prefix+"total_points", prefix+"war",
			prefix+"aag_mean", prefix+"aag_mean_pct",
			prefix+"aag_median", prefix+"aag_median_pct",
			prefix+"rel_mean", prefix+"rel_median",
			prefix+"medrank", prefix+"meanrank", prefix+"gem",
			prefix+"t100", prefix+"t100_pct", prefix+"t50", prefix+"t50_pct",
		)
		values = append(values,
			s.GamesPlayed, s.TotalPoints, s.War,
			s.AboveMeanCount, s.AboveMeanPct,
			s.AboveMedianCount, s.AboveMedianPct,
			s.RelMean, s.RelMedian,
			s.MedianRank, s.MeanRank, s.Gem,
			s.Top100, s.Top100Pct, s.Top50, s.Top50Pct,
		)
	}
	appendSplit("", p.Regular)
	appendSplit(seasonstats.PostMetricPrefix, p.Post)

	columns = append(columns, "ranks")
	values = append(values, ranksJSON)

	query, args, err := qb.InsertInto("player_seasons").
		Columns(columns...).
		Values(values...).
		ToSQL()
	if err != nil {
		return writeStatement{}, err
	}
	return writeStatement{query: query, args: args}, nil
}

func documentCount(set seasonstats.DocumentSet) int {
	n := len(set.Entries) + len(set.Baselines) + len(set.TeamDailyScores) +
		len(set.Players) + len(set.Teams)
	for _, board := range set.Leaderboards {
		n += len(board.Entries)
	}
	return n
}
