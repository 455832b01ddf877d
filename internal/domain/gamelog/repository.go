package gamelog

import "context"

type Repository interface {
	ListGamesBySeason(ctx context.Context, seasonID string) ([]GameResult, error)
	ListLineupEntriesBySeason(ctx context.Context, seasonID string) ([]LineupEntry, error)
}
