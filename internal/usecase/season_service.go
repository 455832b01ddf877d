package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/rkl-hq/season-engine/internal/domain/baseline"
	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
	"github.com/rkl-hq/season-engine/internal/domain/player"
	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
	"github.com/rkl-hq/season-engine/internal/domain/team"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
	"github.com/rkl-hq/season-engine/internal/platform/resilience"
)

// SeasonService runs the full aggregation pipeline for one season: raw
// records -> daily baselines -> per-game enrichment -> seasonal aggregates ->
// ranks -> persisted documents. The math stages are pure and synchronous; all
// reads happen before they start and all writes after they end.
type SeasonService struct {
	gameRepo   gamelog.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	writer     seasonstats.Writer
	cfg        seasonstats.Config
	logger     *logging.Logger
	flight     resilience.SingleFlight
	now        func() time.Time
}

// RunSummary describes one completed recompute pass.
type RunSummary struct {
	SeasonID   string          `json:"season_id"`
	Games      int             `json:"games"`
	Entries    int             `json:"entries"`
	Players    int             `json:"players"`
	Teams      int             `json:"teams"`
	Skipped    []SkippedRecord `json:"skipped,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	DurationMs int64           `json:"duration_ms"`
}

func NewSeasonService(
	gameRepo gamelog.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	writer seasonstats.Writer,
	cfg seasonstats.Config,
	logger *logging.Logger,
) *SeasonService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SeasonService{
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		writer:     writer,
		cfg:        cfg.Normalize(),
		logger:     logger,
		now:        time.Now,
	}
}

// RecomputeSeason recomputes and persists every derived document for a
// season. Concurrent calls for the same season are collapsed into one run;
// the pipeline is idempotent, so a failed run is recovered by calling this
// again rather than patching partial state.
func (s *SeasonService) RecomputeSeason(ctx context.Context, seasonID string) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.RecomputeSeason")
	defer span.End()

	if seasonID == "" {
		return RunSummary{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	value, err, shared := s.flight.Do("recompute:"+seasonID, func() (any, error) {
		return s.recomputeSeasonOnce(ctx, seasonID)
	})
	if err != nil {
		return RunSummary{}, err
	}
	summary, _ := value.(RunSummary)
	if shared {
		s.logger.InfoContext(ctx, "recompute joined in-flight run", "season_id", seasonID)
	}
	return summary, nil
}

func (s *SeasonService) recomputeSeasonOnce(ctx context.Context, seasonID string) (RunSummary, error) {
	startedAt := s.now().UTC()

	var (
		rawGames   []gamelog.GameResult
		rawEntries []gamelog.LineupEntry
		teams      []team.Team
		roster     []player.Player
	)

	loadPool := pool.New().WithContext(ctx).WithCancelOnError()
	loadPool.Go(func(ctx context.Context) error {
		var err error
		rawGames, err = s.gameRepo.ListGamesBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list games: %w", err)
		}
		return nil
	})
	loadPool.Go(func(ctx context.Context) error {
		var err error
		rawEntries, err = s.gameRepo.ListLineupEntriesBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list lineup entries: %w", err)
		}
		return nil
	})
	loadPool.Go(func(ctx context.Context) error {
		var err error
		teams, err = s.teamRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		return nil
	})
	loadPool.Go(func(ctx context.Context) error {
		var err error
		roster, err = s.playerRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		return nil
	})
	if err := loadPool.Wait(); err != nil {
		return RunSummary{}, s.stageError(seasonID, "load", err)
	}

	set, summary := s.computeSeason(seasonID, rawGames, rawEntries, teams, roster)
	summary.StartedAt = startedAt

	if err := s.writer.WriteDocumentSet(ctx, set); err != nil {
		return RunSummary{}, s.stageError(seasonID, "persist", err)
	}

	summary.DurationMs = s.now().UTC().Sub(startedAt).Milliseconds()
	s.logger.InfoContext(ctx, "season recompute finished",
		"season_id", seasonID,
		"games", summary.Games,
		"entries", summary.Entries,
		"players", summary.Players,
		"teams", summary.Teams,
		"skipped", len(summary.Skipped),
		"duration_ms", summary.DurationMs,
	)
	return summary, nil
}

// computeSeason is the pure portion of the pipeline: no I/O, deterministic
// output for a given input.
func (s *SeasonService) computeSeason(
	seasonID string,
	rawGames []gamelog.GameResult,
	rawEntries []gamelog.LineupEntry,
	teams []team.Team,
	roster []player.Player,
) (seasonstats.DocumentSet, RunSummary) {
	games, skippedGames := ValidateGameResults(rawGames)
	entries, skippedEntries := ValidateLineupEntries(rawEntries, games)

	baselines := ComputeDailyBaselines(s.cfg, entries)
	enriched, skippedEnrich := EnrichEntries(entries, baselines)
	teamScores := ComputeTeamDailyScores(games)

	aggregate := AggregateSeason(s.cfg, seasonID, enriched, baselines, teamScores, games, teams, roster)
	players := RankPlayers(aggregate.SortedPlayers())
	rankedTeams := RankTeams(aggregate.SortedTeams())
	boards := BuildLeaderboards(seasonID, enriched)

	skipped := make([]SkippedRecord, 0, len(skippedGames)+len(skippedEntries)+len(skippedEnrich))
	skipped = append(skipped, skippedGames...)
	skipped = append(skipped, skippedEntries...)
	skipped = append(skipped, skippedEnrich...)

	set := seasonstats.DocumentSet{
		SeasonID:        seasonID,
		Entries:         sortedEntries(enriched),
		Baselines:       sortedBaselines(baselines),
		TeamDailyScores: teamScores,
		Players:         players,
		Teams:           rankedTeams,
		Leaderboards:    boards,
	}
	summary := RunSummary{
		SeasonID: seasonID,
		Games:    len(games),
		Entries:  len(enriched),
		Players:  len(players),
		Teams:    len(rankedTeams),
		Skipped:  skipped,
	}
	return set, summary
}

func (s *SeasonService) stageError(seasonID, stage string, err error) error {
	return fmt.Errorf("season %s stage=%s: %w", seasonID, stage, err)
}

func sortedEntries(entries []gamelog.EnrichedEntry) []gamelog.EnrichedEntry {
	out := append([]gamelog.EnrichedEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool { return entryKeyLess(out[i], out[j]) })
	return out
}

func sortedBaselines(baselines map[string]baseline.DailyBaseline) []baseline.DailyBaseline {
	out := make([]baseline.DailyBaseline, 0, len(baselines))
	for _, b := range baselines {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
