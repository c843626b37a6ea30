package pitch

import (
	"math"
	"testing"
)

func TestMetricOf_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if m := MetricOf(v); m.Present {
			t.Fatalf("MetricOf(%v): expected absent metric", v)
		}
	}
	if m := MetricOf(0); !m.Present || m.Value != 0 {
		t.Fatalf("measured zero must stay present, got=%+v", m)
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	if m, ok := ParseMetric("92.4"); !ok || !m.Present || m.Value != 92.4 {
		t.Fatalf("ParseMetric(92.4): got=%+v ok=%t", m, ok)
	}
	for _, raw := range []string{"", "NA", "n/a", "-", "null", "NaN"} {
		m, ok := ParseMetric(raw)
		if !ok || m.Present {
			t.Fatalf("ParseMetric(%q): sentinel must be absent with ok=true, got=%+v ok=%t", raw, m, ok)
		}
	}
	if _, ok := ParseMetric("fast"); ok {
		t.Fatalf("ParseMetric(fast): expected ok=false for non-numeric cell")
	}
}

func TestMetricPtr(t *testing.T) {
	t.Parallel()

	if p := (Metric{}).Ptr(); p != nil {
		t.Fatalf("absent metric must bind to nil, got=%v", *p)
	}
	p := MetricOf(7.5).Ptr()
	if p == nil || *p != 7.5 {
		t.Fatalf("present metric Ptr: got=%v", p)
	}
}
