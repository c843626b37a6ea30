package datasource

import "context"

// Repository describes data-source registry reads from use cases.
type Repository interface {
	List(ctx context.Context) ([]Source, error)
	GetByName(ctx context.Context, name string) (Source, bool, error)
}
