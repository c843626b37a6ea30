package player

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
)

// Hand is a throwing hand. Empty means unknown.
type Hand string

const (
	HandRight   Hand = "R"
	HandLeft    Hand = "L"
	HandUnknown Hand = ""
)

// Player is one pitcher on the roster. Identity is immutable once created;
// vendor external IDs may be back-filled later by administrative entry.
type Player struct {
	ID           int64
	FirstName    string
	LastName     string
	Throws       Hand
	Active       bool
	RapsodoID    string
	PitchLogicID string
	TrackmanID   string
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ExternalID returns the vendor-specific external ID, empty when the player
// has none recorded for that vendor.
func (p Player) ExternalID(vendor datasource.Vendor) string {
	switch vendor {
	case datasource.VendorRapsodo:
		return p.RapsodoID
	case datasource.VendorPitchLogic:
		return p.PitchLogicID
	case datasource.VendorTrackman:
		return p.TrackmanID
	}
	return ""
}

func (p Player) Validate() error {
	if p.FirstName == "" {
		return fmt.Errorf("player first name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("player last name is required")
	}
	switch p.Throws {
	case HandRight, HandLeft, HandUnknown:
	default:
		return fmt.Errorf("invalid throwing hand: %s", p.Throws)
	}
	return nil
}

// ParseName splits a free-text pitcher name into first/last parts. The
// fallbacks keep auto-created records queryable even from junk input.
func ParseName(name string) (first, last string) {
	tokens := strings.Fields(strings.TrimSpace(name))
	switch len(tokens) {
	case 0:
		return "Unknown", "Player"
	case 1:
		return tokens[0], "Unknown"
	case 2:
		return tokens[0], tokens[1]
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}
