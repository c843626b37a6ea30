package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	qb "github.com/riskibarqy/pitching-analytics/internal/platform/querybuilder"
)

type DataSourceRepository struct {
	db *sqlx.DB
}

type dataSourceTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

var dataSourceSelectColumns = []string{"id", "name", "description"}

func NewDataSourceRepository(db *sqlx.DB) *DataSourceRepository {
	return &DataSourceRepository{db: db}
}

func (r *DataSourceRepository) List(ctx context.Context) ([]datasource.Source, error) {
	query, args, err := qb.Select(dataSourceSelectColumns...).From("data_sources").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select data sources query: %w", err)
	}

	var rows []dataSourceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select data sources: %w", err)
	}

	out := make([]datasource.Source, 0, len(rows))
	for _, row := range rows {
		out = append(out, datasource.Source{
			ID:          row.ID,
			Name:        row.Name,
			Description: nullStringValue(row.Description),
		})
	}
	return out, nil
}

func (r *DataSourceRepository) GetByName(ctx context.Context, name string) (datasource.Source, bool, error) {
	query, args, err := qb.Select(dataSourceSelectColumns...).From("data_sources").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return datasource.Source{}, false, fmt.Errorf("build select data source query: %w", err)
	}

	var row dataSourceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return datasource.Source{}, false, nil
		}
		return datasource.Source{}, false, fmt.Errorf("select data source: %w", err)
	}
	return datasource.Source{
		ID:          row.ID,
		Name:        row.Name,
		Description: nullStringValue(row.Description),
	}, true, nil
}
