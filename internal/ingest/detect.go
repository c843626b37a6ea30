package ingest

import (
	"strings"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
)

// Vendor header vocabularies overlap, so detection order is part of the
// contract: Rapsodo is tested first, then PitchLogic, then Trackman. Ties go
// to check order, never to match count.
var (
	rapsodoIndicators    = []string{"relspeed", "inducedvertbreak", "tilt"}
	pitchlogicIndicators = []string{"arm slot", "armslot", "rifle spin", "gyro"}
	trackmanIndicators   = []string{"vertreangle", "horzreangle", "pitchcall", "zonespeed"}
)

// DetectVendor classifies a CSV export by its header tokens.
func DetectVendor(headers []string) datasource.Vendor {
	lowered := make([]string, 0, len(headers))
	for _, h := range headers {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(h)))
	}
	joined := strings.Join(lowered, " ")

	for _, ind := range rapsodoIndicators {
		if strings.Contains(joined, ind) {
			return datasource.VendorRapsodo
		}
	}
	for _, ind := range pitchlogicIndicators {
		if strings.Contains(joined, ind) {
			return datasource.VendorPitchLogic
		}
	}
	for _, ind := range trackmanIndicators {
		if strings.Contains(joined, ind) {
			return datasource.VendorTrackman
		}
	}
	return datasource.VendorUnknown
}

// PitcherKey locates the pitcher-identifying column(s) for a table. When
// only separate First/Last name columns exist (a PitchLogic export shape),
// the key synthesizes the full name per row.
type PitcherKey struct {
	Column  string
	First   string
	Last    string
	combine bool
}

func (k PitcherKey) Found() bool { return k.Column != "" || k.combine }

// Name extracts the pitcher display name for one row, empty when the row has
// no usable identity.
func (k PitcherKey) Name(row Row) string {
	if k.combine {
		first, _ := row.Lookup(k.First)
		last, _ := row.Lookup(k.Last)
		full := strings.TrimSpace(first + " " + last)
		return full
	}
	name, _ := row.Lookup(k.Column)
	return name
}

var pitcherColumnOrder = []string{"Pitcher Name", "Pitcher", "pitcher", "pitcher_name"}

// FindPitcherKey resolves the pitcher column with the vendor-agnostic search
// order, falling back to the split First/Last shape.
func FindPitcherKey(t *Table) PitcherKey {
	for _, col := range pitcherColumnOrder {
		if t.HasColumn(col) {
			return PitcherKey{Column: col}
		}
	}
	if t.HasColumn("First Name") && t.HasColumn("Last Name") {
		return PitcherKey{First: "First Name", Last: "Last Name", combine: true}
	}
	return PitcherKey{}
}

// DetectBulk reports whether the file holds more than one pitcher, plus the
// distinct pitcher count. A file without any pitcher column is treated as
// single-player.
func DetectBulk(t *Table, vendor datasource.Vendor) (bool, int) {
	var key PitcherKey
	switch vendor {
	case datasource.VendorPitchLogic:
		key = FindPitcherKey(t)
	case datasource.VendorRapsodo:
		if t.HasColumn("Pitcher") {
			key = PitcherKey{Column: "Pitcher"}
		}
	default:
		key = FindPitcherKey(t)
	}
	if !key.Found() {
		return false, 1
	}

	distinct := make(map[string]struct{})
	for _, row := range t.Rows {
		name := key.Name(row)
		if name == "" {
			continue
		}
		distinct[name] = struct{}{}
	}
	if len(distinct) == 0 {
		return false, 1
	}
	return len(distinct) > 1, len(distinct)
}

var externalIDAliases = map[datasource.Vendor][]string{
	datasource.VendorRapsodo:    {"PlayerId", "Player ID", "PlayerID", "RapsodoID", "Rapsodo ID"},
	datasource.VendorPitchLogic: {"PlayerID", "Player ID", "PitchLogicID"},
	datasource.VendorTrackman:   {"PlayerID", "Player ID", "TrackmanID"},
}

// ExternalID pulls the vendor's own player identifier from a row when the
// export carries one. Sparse by nature; empty means the matcher degrades to
// name heuristics.
func ExternalID(row Row, vendor datasource.Vendor) string {
	id, _ := row.Lookup(externalIDAliases[vendor]...)
	return id
}

var armSlotAliases = []string{"ArmSlot", "Arm Slot", "Arm Slot (yellow)", "arm_slot"}

// ArmSlotSamples collects up to max arm-slot readings (converted to degrees)
// for handedness inference.
func ArmSlotSamples(rows []Row, max int) []float64 {
	out := make([]float64, 0, max)
	for _, row := range rows {
		if len(out) >= max {
			break
		}
		cell, ok := row.Lookup(armSlotAliases...)
		if !ok {
			continue
		}
		if m := tiltOf(cell); m.Present {
			out = append(out, m.Value)
		}
	}
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	time.RFC3339,
}

// RowDate parses the row's Date column. The second return is false when the
// column is missing or unparseable; the date-fallback policy lives with the
// caller, not here.
func RowDate(row Row) (time.Time, bool) {
	cell, ok := row.Lookup("Date", "date", "SessionDate")
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, cell); err == nil {
			return ts.Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}

// RowTimestamp builds the pitch timestamp from the Date and optional Time
// columns. Best effort: a bad time degrades to the date alone, a bad date to
// no timestamp.
func RowTimestamp(row Row) *time.Time {
	dateCell, ok := row.Lookup("Date", "date")
	if !ok {
		return nil
	}
	if timeCell, ok := row.Lookup("Time", "time"); ok {
		combined := dateCell + " " + timeCell
		for _, layout := range []string{"2006-01-02 15:04:05", "01/02/2006 15:04:05", "1/2/2006 15:04:05", "2006-01-02 15:04"} {
			if ts, err := time.Parse(layout, combined); err == nil {
				return &ts
			}
		}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, dateCell); err == nil {
			return &ts
		}
	}
	return nil
}
