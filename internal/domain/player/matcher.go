package player

import (
	"strings"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
)

// MatchMethod tags how a candidate name was resolved to a roster entry.
type MatchMethod string

const (
	MatchExternalID MatchMethod = "External ID"
	MatchExactName  MatchMethod = "Exact Name"
	MatchLastName   MatchMethod = "Last Name"
	MatchReversed   MatchMethod = "Name (Reversed)"
	MatchPartial    MatchMethod = "Partial Match"
)

// Confidence ranks match tiers; higher wins when several roster entries hit.
type Confidence int

const (
	ConfidenceLow    Confidence = 1
	ConfidenceMedium Confidence = 2
	ConfidenceHigh   Confidence = 3
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "High"
	case ConfidenceMedium:
		return "Medium"
	case ConfidenceLow:
		return "Low"
	}
	return "None"
}

// Match is one roster candidate produced by MatchName.
type Match struct {
	Player     Player
	Method     MatchMethod
	Confidence Confidence
}

// MatchResult is the resolved outcome for one candidate name. When several
// roster entries matched, HasDuplicates is set and AllMatches carries the
// full list so the operator can be warned.
type MatchResult struct {
	Match
	HasDuplicates bool
	AllMatches    []Match
}

// MatchName resolves a free-text pitcher name against the roster.
//
// An external ID, when supplied, is authoritative: an equality hit on the
// vendor's ID field short-circuits every name heuristic, even when a name
// rule would also have matched a different player. Name rules are tried per
// roster entry in confidence order and only the first hit per entry is
// recorded. Zero hits return nil.
func MatchName(name string, roster []Player, externalID string, vendor datasource.Vendor) *MatchResult {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	if externalID != "" && vendor.Known() {
		for _, p := range roster {
			if p.ExternalID(vendor) == externalID {
				return &MatchResult{Match: Match{
					Player:     p,
					Method:     MatchExternalID,
					Confidence: ConfidenceHigh,
				}}
			}
		}
	}

	candidate := strings.ToLower(strings.TrimSpace(name))
	var matches []Match

	for _, p := range roster {
		full := strings.ToLower(p.FullName())
		first := strings.ToLower(p.FirstName)
		last := strings.ToLower(p.LastName)

		switch {
		case candidate == full:
			matches = append(matches, Match{Player: p, Method: MatchExactName, Confidence: ConfidenceHigh})
		case candidate == last:
			matches = append(matches, Match{Player: p, Method: MatchLastName, Confidence: ConfidenceMedium})
		case candidate == last+" "+first:
			matches = append(matches, Match{Player: p, Method: MatchReversed, Confidence: ConfidenceHigh})
		case strings.Contains(candidate, last) || strings.Contains(full, candidate):
			matches = append(matches, Match{Player: p, Method: MatchPartial, Confidence: ConfidenceLow})
		}
	}

	switch len(matches) {
	case 0:
		return nil
	case 1:
		return &MatchResult{Match: matches[0]}
	}

	// Highest confidence wins; ties keep the first in roster order so the
	// outcome is stable across runs.
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence > best.Confidence {
			best = m
		}
	}

	return &MatchResult{
		Match:         best,
		HasDuplicates: true,
		AllMatches:    matches,
	}
}
