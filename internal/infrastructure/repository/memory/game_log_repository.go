package memory

import (
	"context"
	"sync"

	"github.com/rkl-hq/season-engine/internal/domain/gamelog"
)

type GameLogRepository struct {
	mu              sync.RWMutex
	gamesBySeason   map[string][]gamelog.GameResult
	entriesBySeason map[string][]gamelog.LineupEntry
}

func NewGameLogRepository(games []gamelog.GameResult, entries []gamelog.LineupEntry) *GameLogRepository {
	gamesBySeason := make(map[string][]gamelog.GameResult)
	for _, item := range games {
		gamesBySeason[item.SeasonID] = append(gamesBySeason[item.SeasonID], item)
	}

	entriesBySeason := make(map[string][]gamelog.LineupEntry)
	for _, item := range entries {
		entriesBySeason[item.SeasonID] = append(entriesBySeason[item.SeasonID], item)
	}

	return &GameLogRepository{
		gamesBySeason:   gamesBySeason,
		entriesBySeason: entriesBySeason,
	}
}

func (r *GameLogRepository) ListGamesBySeason(_ context.Context, seasonID string) ([]gamelog.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.gamesBySeason[seasonID]
	out := make([]gamelog.GameResult, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *GameLogRepository) ListLineupEntriesBySeason(_ context.Context, seasonID string) ([]gamelog.LineupEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.entriesBySeason[seasonID]
	out := make([]gamelog.LineupEntry, 0, len(items))
	out = append(out, items...)
	return out, nil
}
