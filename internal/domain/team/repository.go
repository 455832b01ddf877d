package team

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Team, error)
}
