package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
)

type DataSourceRepository struct {
	mu      sync.RWMutex
	sources []datasource.Source
}

func NewDataSourceRepository(sources []datasource.Source) *DataSourceRepository {
	out := make([]datasource.Source, len(sources))
	copy(out, sources)
	return &DataSourceRepository{sources: out}
}

func (r *DataSourceRepository) List(_ context.Context) ([]datasource.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]datasource.Source, len(r.sources))
	copy(out, r.sources)
	return out, nil
}

func (r *DataSourceRepository) GetByName(_ context.Context, name string) (datasource.Source, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sources {
		if s.Name == name {
			return s, true, nil
		}
	}
	return datasource.Source{}, false, nil
}
