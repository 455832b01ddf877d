package memory

import (
	"context"
	"sync"

	"github.com/rkl-hq/season-engine/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsBySeason map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsBySeason := make(map[string][]team.Team)
	for _, item := range teams {
		teamsBySeason[item.SeasonID] = append(teamsBySeason[item.SeasonID], item)
	}

	return &TeamRepository{teamsBySeason: teamsBySeason}
}

func (r *TeamRepository) ListBySeason(_ context.Context, seasonID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.teamsBySeason[seasonID]
	out := make([]team.Team, 0, len(items))
	out = append(out, items...)
	return out, nil
}
