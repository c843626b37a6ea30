package session

import "context"

// Repository describes session persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, s Session) (int64, error)
	GetByID(ctx context.Context, id int64) (Session, bool, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]Session, error)
	AddPitchCount(ctx context.Context, sessionID int64, delta int) error
}
