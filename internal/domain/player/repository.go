package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListActive(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (int64, error)
}
