package ingest

import (
	"fmt"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

// QualityRule is one physiological plausibility check. Rules are independent:
// every rule is evaluated even after an earlier one failed, and absent
// fields are never penalized.
type QualityRule struct {
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Penalty float64
	Field   func(pitch.Metrics) pitch.Metric
}

// DefaultQualityRules returns the stock rule set for pitched-ball data.
func DefaultQualityRules() []QualityRule {
	return []QualityRule{
		{
			Label: "velocity", Unit: "mph",
			Min: 40, Max: 110, Penalty: 0.3,
			Field: func(m pitch.Metrics) pitch.Metric { return m.ReleaseSpeed },
		},
		{
			Label: "spin rate", Unit: "rpm",
			Min: 500, Max: 3500, Penalty: 0.3,
			Field: func(m pitch.Metrics) pitch.Metric { return m.SpinRate },
		},
		{
			Label: "spin axis", Unit: "deg",
			Min: 0, Max: 360, Penalty: 0.2,
			Field: func(m pitch.Metrics) pitch.Metric { return m.SpinAxis },
		},
		{
			Label: "release height", Unit: "ft",
			Min: 3, Max: 8, Penalty: 0.2,
			Field: func(m pitch.Metrics) pitch.Metric { return m.ReleaseHeight },
		},
	}
}

// ScoreQuality scores a mapped record against the rule set. Starts from 1.0,
// subtracts each violated rule's penalty, floors at 0.0.
func ScoreQuality(m pitch.Metrics, rules []QualityRule) (float64, []string) {
	score := 1.0
	var issues []string

	for _, rule := range rules {
		value := rule.Field(m)
		if !value.Present {
			continue
		}
		if value.Value < rule.Min || value.Value > rule.Max {
			score -= rule.Penalty
			issues = append(issues, fmt.Sprintf("%s %v %s outside %v-%v range",
				rule.Label, value.Value, rule.Unit, rule.Min, rule.Max))
		}
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}
