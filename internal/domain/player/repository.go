package player

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Player, error)
}
