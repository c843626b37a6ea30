package postgres

import (
	"database/sql"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringValue(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func metricOfPtr(v *float64) pitch.Metric {
	if v == nil {
		return pitch.Metric{}
	}
	return pitch.MetricOf(*v)
}
