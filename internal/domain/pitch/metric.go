package pitch

import (
	"math"
	"strconv"
)

// Metric is a numeric-or-absent measurement. The zero value is absent, which
// is distinct from a measured zero. NaN and infinities collapse to absent so
// an undefined value can never leak into persistence or scoring.
type Metric struct {
	Value   float64
	Present bool
}

func MetricOf(v float64) Metric {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Metric{}
	}
	return Metric{Value: v, Present: true}
}

// ParseMetric converts a raw cell into a Metric. Empty or sentinel cells map
// to absent with ok=true; a non-empty cell that is not numeric reports
// ok=false so callers can surface a row-level error.
func ParseMetric(raw string) (Metric, bool) {
	if isAbsentCell(raw) {
		return Metric{}, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Metric{}, false
	}
	return MetricOf(v), true
}

// Ptr returns the value for nullable SQL binds, nil when absent.
func (m Metric) Ptr() *float64 {
	if !m.Present {
		return nil
	}
	v := m.Value
	return &v
}

func (m Metric) Or(fallback float64) float64 {
	if !m.Present {
		return fallback
	}
	return m.Value
}

func isAbsentCell(raw string) bool {
	switch raw {
	case "", "-", "--", "NA", "N/A", "na", "n/a", "null", "NULL", "NaN", "nan":
		return true
	}
	return false
}
