package pitch

import "context"

// Repository describes pitch persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, p Pitch) (int64, error)
	ListBySession(ctx context.Context, sessionID int64) ([]Pitch, error)
	AggregateBySession(ctx context.Context, sessionID int64) ([]TypeAggregate, error)
}
