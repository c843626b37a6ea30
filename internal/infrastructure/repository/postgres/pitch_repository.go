package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
	qb "github.com/riskibarqy/pitching-analytics/internal/platform/querybuilder"
)

type PitchRepository struct {
	db *sqlx.DB
}

func NewPitchRepository(db *sqlx.DB) *PitchRepository {
	return &PitchRepository{db: db}
}

func (r *PitchRepository) Insert(ctx context.Context, p pitch.Pitch) (int64, error) {
	query, args, err := qb.InsertModel("pitch_data", pitchInsertFrom(p), "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert pitch query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert pitch: %w", err)
	}
	return id, nil
}

func (r *PitchRepository) ListBySession(ctx context.Context, sessionID int64) ([]pitch.Pitch, error) {
	query, args, err := qb.Select("*").From("pitch_data").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("pitch_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select pitches query: %w", err)
	}

	var rows []pitchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select pitches: %w", err)
	}

	out := make([]pitch.Pitch, 0, len(rows))
	for _, row := range rows {
		out = append(out, pitchFromRow(row))
	}
	return out, nil
}

type pitchAggregateRow struct {
	PitchType    string   `db:"pitch_type"`
	PitchCount   int      `db:"pitch_count"`
	AvgVelocity  *float64 `db:"avg_velocity"`
	MaxVelocity  *float64 `db:"max_velocity"`
	AvgSpinRate  *float64 `db:"avg_spin_rate"`
	AvgSpinAxis  *float64 `db:"avg_spin_axis"`
	AvgQuality   *float64 `db:"avg_quality"`
	ValidPitches int      `db:"valid_pitches"`
}

func (r *PitchRepository) AggregateBySession(ctx context.Context, sessionID int64) ([]pitch.TypeAggregate, error) {
	query, args, err := qb.Select(
		"pitch_type",
		"COUNT(*) AS pitch_count",
		"AVG(release_speed) AS avg_velocity",
		"MAX(release_speed) AS max_velocity",
		"AVG(spin_rate) AS avg_spin_rate",
		"AVG(spin_axis) AS avg_spin_axis",
		"AVG(quality_score) AS avg_quality",
		"COUNT(*) FILTER (WHERE is_valid) AS valid_pitches",
	).From("pitch_data").
		Where(qb.Eq("session_id", sessionID)).
		GroupBy("pitch_type").
		OrderBy("pitch_count DESC", "pitch_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build aggregate pitches query: %w", err)
	}

	var rows []pitchAggregateRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("aggregate pitches: %w", err)
	}

	out := make([]pitch.TypeAggregate, 0, len(rows))
	for _, row := range rows {
		agg := pitch.TypeAggregate{
			PitchType:    row.PitchType,
			Count:        row.PitchCount,
			AvgVelocity:  metricOfPtr(row.AvgVelocity),
			MaxVelocity:  metricOfPtr(row.MaxVelocity),
			AvgSpinRate:  metricOfPtr(row.AvgSpinRate),
			AvgSpinAxis:  metricOfPtr(row.AvgSpinAxis),
			ValidPitches: row.ValidPitches,
		}
		if row.AvgQuality != nil {
			agg.AvgQuality = *row.AvgQuality
		}
		out = append(out, agg)
	}
	return out, nil
}
