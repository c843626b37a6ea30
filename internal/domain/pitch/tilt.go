package pitch

import (
	"math"
	"strconv"
	"strings"
)

// TiltToDegrees converts a clock-face tilt reading ("1:30", "12:40") to
// degrees. Plain numeric input passes through unchanged, already in degrees.
// Null, empty or unparseable input yields an absent Metric, never an error:
// tilt is advisory data and a bad cell must not sink the row.
func TiltToDegrees(raw string) Metric {
	raw = strings.TrimSpace(raw)
	if isAbsentCell(raw) {
		return Metric{}
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return MetricOf(v)
	}

	if strings.Contains(raw, ":") {
		parts := strings.SplitN(raw, ":", 2)
		hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Metric{}
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return Metric{}
		}
		// Each hour is 30 degrees, each minute half a degree.
		degrees := math.Mod(float64((hours%12)*30)+float64(minutes)/2, 360)
		if degrees < 0 {
			degrees += 360
		}
		return MetricOf(degrees)
	}

	return Metric{}
}
