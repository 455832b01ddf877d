package leaderboard

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Board, error)
}
