package ingest

import (
	"strconv"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

// fieldSpec binds one canonical metric to its ordered vendor alias list.
// Keeping the alias tables as data means a new vendor spelling is a table
// edit, not a new code branch.
type fieldSpec struct {
	aliases []string
	assign  func(*pitch.Metrics, pitch.Metric)
	// tilt fields carry clock notation; a present cell always assigns the
	// conversion result, even when conversion yields absent, matching the
	// permissive tilt contract.
	tilt bool
}

func applyFields(row Row, specs []fieldSpec, m *pitch.Metrics) error {
	for _, spec := range specs {
		if spec.tilt {
			cell, ok := row.Lookup(spec.aliases...)
			if !ok {
				continue
			}
			spec.assign(m, tiltOf(cell))
			continue
		}

		value, err := row.Metric(spec.aliases...)
		if err != nil {
			return err
		}
		if !value.Present {
			continue
		}
		spec.assign(m, value)
	}
	return nil
}

func tiltOf(cell string) pitch.Metric {
	return pitch.TiltToDegrees(cell)
}

// MapRow translates one raw vendor row into the canonical metric record.
// Mapping is total over row shape: missing fields stay absent. An unknown
// vendor maps to an empty record rather than an error so the caller's pitch
// still carries its raw payload.
func MapRow(vendor datasource.Vendor, row Row) (pitch.Metrics, error) {
	var m pitch.Metrics
	var specs []fieldSpec

	switch vendor {
	case datasource.VendorRapsodo:
		specs = rapsodoFields
	case datasource.VendorPitchLogic:
		specs = pitchlogicFields
	case datasource.VendorTrackman:
		specs = trackmanFields
	default:
		return m, nil
	}

	if err := applyFields(row, specs, &m); err != nil {
		return pitch.Metrics{}, err
	}

	switch vendor {
	case datasource.VendorPitchLogic:
		derivePitchLogic(&m)
	case datasource.VendorTrackman:
		mapTrackmanContext(row, &m)
	}

	return m, nil
}

var pitchTypeAliases = []string{"TaggedPitchType", "Pitch Type", "PitchType", "Type"}
var pitchNumberAliases = []string{"PitchNo", "Pitch #", "Pitch"}

// PitchType resolves and canonicalizes the row's pitch-type code.
func PitchType(row Row) string {
	cell, ok := row.Lookup(pitchTypeAliases...)
	if !ok {
		return ""
	}
	return pitch.StandardizePitchType(cell)
}

// PitchNumber resolves the row's pitch sequence number, falling back to the
// 1-based row index when the export carries none.
func PitchNumber(row Row, idx int) int {
	cell, ok := row.Lookup(pitchNumberAliases...)
	if !ok {
		return idx + 1
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return int(f)
	}
	return idx + 1
}
