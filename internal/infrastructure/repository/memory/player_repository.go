package memory

import (
	"context"
	"sync"

	"github.com/rkl-hq/season-engine/internal/domain/player"
)

type PlayerRepository struct {
	mu              sync.RWMutex
	playersBySeason map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	playersBySeason := make(map[string][]player.Player)
	for _, item := range players {
		playersBySeason[item.SeasonID] = append(playersBySeason[item.SeasonID], item)
	}

	return &PlayerRepository{playersBySeason: playersBySeason}
}

func (r *PlayerRepository) ListBySeason(_ context.Context, seasonID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.playersBySeason[seasonID]
	out := make([]player.Player, 0, len(items))
	out = append(out, items...)
	return out, nil
}
