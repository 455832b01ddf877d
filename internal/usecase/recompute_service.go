package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
)

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"

	defaultRecomputeWorkers = 2
	maxRecomputeWorkers     = 8
)

// RecomputeInput requests a recompute pass over one or more seasons.
type RecomputeInput struct {
	SeasonIDs  []string
	MaxWorkers int
}

// RecomputeResult summarizes a multi-season recompute fan-out.
type RecomputeResult struct {
	RunID        string                `json:"run_id"`
	TaskCount    int                   `json:"task_count"`
	SuccessCount int                   `json:"success_count"`
	FailedCount  int                   `json:"failed_count"`
	WorkerCount  int                   `json:"worker_count"`
	Tasks        []RecomputeTaskResult `json:"tasks"`
}

type RecomputeTaskResult struct {
	SeasonID   string `json:"season_id"`
	Status     string `json:"status"`
	Games      int    `json:"games"`
	Entries    int    `json:"entries"`
	Skipped    int    `json:"skipped"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// RecomputeService fans a season recompute out across a bounded worker pool.
// Each season still runs its pipeline single-threaded; only distinct seasons
// execute in parallel, and the per-season single-flight in SeasonService
// keeps overlapping requests from interleaving.
type RecomputeService struct {
	seasons *SeasonService
	logger  *logging.Logger
}

func NewRecomputeService(seasons *SeasonService, logger *logging.Logger) *RecomputeService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RecomputeService{seasons: seasons, logger: logger}
}

func (s *RecomputeService) RunSeasons(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.RunSeasons")
	defer span.End()

	seasonIDs := dedupeSeasonIDs(input.SeasonIDs)
	if len(seasonIDs) == 0 {
		return RecomputeResult{}, fmt.Errorf("%w: at least one season id is required", ErrInvalidInput)
	}

	workers := input.MaxWorkers
	if workers <= 0 {
		workers = defaultRecomputeWorkers
	}
	if workers > maxRecomputeWorkers {
		workers = maxRecomputeWorkers
	}
	if workers > len(seasonIDs) {
		workers = len(seasonIDs)
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create recompute worker pool: %w", err)
	}
	defer workerPool.Release()

	result := RecomputeResult{
		RunID:       uuid.NewString(),
		TaskCount:   len(seasonIDs),
		WorkerCount: workers,
		Tasks:       make([]RecomputeTaskResult, 0, len(seasonIDs)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, seasonID := range seasonIDs {
		seasonID := seasonID
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			task := s.runSeasonTask(ctx, seasonID)

			mu.Lock()
			if task.Status == recomputeStatusSuccess {
				result.SuccessCount++
			} else {
				result.FailedCount++
			}
			result.Tasks = append(result.Tasks, task)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			result.FailedCount++
			result.Tasks = append(result.Tasks, RecomputeTaskResult{
				SeasonID: seasonID,
				Status:   recomputeStatusFailed,
				Message:  fmt.Sprintf("submit task: %v", submitErr),
			})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].SeasonID < result.Tasks[j].SeasonID
	})

	s.logger.InfoContext(ctx, "multi-season recompute finished",
		"run_id", result.RunID,
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func (s *RecomputeService) runSeasonTask(ctx context.Context, seasonID string) RecomputeTaskResult {
	started := time.Now()
	summary, err := s.seasons.RecomputeSeason(ctx, seasonID)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		s.logger.WarnContext(ctx, "season recompute failed", "season_id", seasonID, "error", err)
		return RecomputeTaskResult{
			SeasonID:   seasonID,
			Status:     recomputeStatusFailed,
			DurationMs: elapsed,
			Message:    err.Error(),
		}
	}
	return RecomputeTaskResult{
		SeasonID:   seasonID,
		Status:     recomputeStatusSuccess,
		Games:      summary.Games,
		Entries:    summary.Entries,
		Skipped:    len(summary.Skipped),
		DurationMs: elapsed,
	}
}

func dedupeSeasonIDs(seasonIDs []string) []string {
	seen := make(map[string]struct{}, len(seasonIDs))
	out := make([]string, 0, len(seasonIDs))
	for _, id := range seasonIDs {
		if id == "" {
			continue
		}
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
