package ingest

import (
	"math"
	"strings"
	"testing"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
)

func TestMapRow_Rapsodo(t *testing.T) {
	t.Parallel()

	row := Row{
		"Velocity":         "92.4",
		"SpinRate":         "2310",
		"SpinAxis":         "195.0",
		"Tilt":             "12:45",
		"SpinEff":          "94.2",
		"HorzBreak":        "-8.1",
		"InducedVertBreak": "16.3",
		"RelHeight":        "5.9",
		"Extension":        "6.1",
	}
	m, err := MapRow(datasource.VendorRapsodo, row)
	if err != nil {
		t.Fatalf("map row: %v", err)
	}

	if !m.ReleaseSpeed.Present || m.ReleaseSpeed.Value != 92.4 {
		t.Fatalf("release speed: got=%+v", m.ReleaseSpeed)
	}
	if !m.SpinRate.Present || m.SpinRate.Value != 2310 {
		t.Fatalf("spin rate: got=%+v", m.SpinRate)
	}
	// A present Tilt column overrides the numeric SpinAxis cell.
	if !m.SpinAxis.Present || m.SpinAxis.Value != 22.5 {
		t.Fatalf("spin axis must come from tilt, got=%+v", m.SpinAxis)
	}
	if !m.InducedVerticalBreak.Present || m.InducedVerticalBreak.Value != 16.3 {
		t.Fatalf("induced vertical break: got=%+v", m.InducedVerticalBreak)
	}
	if m.ExitVelocity.Present {
		t.Fatalf("unmapped column must stay absent")
	}
}

func TestMapRow_RapsodoSpinAxisWithoutTilt(t *testing.T) {
	t.Parallel()

	m, err := MapRow(datasource.VendorRapsodo, Row{"SpinAxis": "195.0"})
	if err != nil {
		t.Fatalf("map row: %v", err)
	}
	if !m.SpinAxis.Present || m.SpinAxis.Value != 195.0 {
		t.Fatalf("spin axis: got=%+v", m.SpinAxis)
	}
}

func TestMapRow_PitchLogicDerivesRelativeSpin(t *testing.T) {
	t.Parallel()

	row := Row{
		"Speed (mph)":           "88.7",
		"Total Spin (rpm)":      "2105",
		"Spin Direction (blue)": "1:30",
		"Arm Slot (yellow)":     "2:00",
		"Rifle Spin (rpm)":      "310",
	}
	m, err := MapRow(datasource.VendorPitchLogic, row)
	if err != nil {
		t.Fatalf("map row: %v", err)
	}

	if !m.SpinAxis.Present || m.SpinAxis.Value != 45 {
		t.Fatalf("spin axis: got=%+v", m.SpinAxis)
	}
	if !m.ArmSlot.Present || m.ArmSlot.Value != 60 {
		t.Fatalf("arm slot: got=%+v", m.ArmSlot)
	}
	if !m.RelativeSpinDirection.Present || math.Abs(m.RelativeSpinDirection.Value-15) > 1e-9 {
		t.Fatalf("relative spin direction: got=%+v", m.RelativeSpinDirection)
	}
	if !m.GyroDegree.Present || m.GyroDegree.Value != 310 {
		t.Fatalf("gyro: got=%+v", m.GyroDegree)
	}
}

func TestMapRow_PitchLogicRelativeSpinNeedsBothInputs(t *testing.T) {
	t.Parallel()

	m, err := MapRow(datasource.VendorPitchLogic, Row{"Spin Direction (blue)": "1:30"})
	if err != nil {
		t.Fatalf("map row: %v", err)
	}
	if m.RelativeSpinDirection.Present {
		t.Fatalf("derivation without arm slot must stay absent, got=%+v", m.RelativeSpinDirection)
	}
}

func TestMapRow_Trackman(t *testing.T) {
	t.Parallel()

	row := Row{
		"RelSpeed":   "95.1",
		"SpinRate":   "2450",
		"SpinAxis":   "210",
		"ZoneSpeed":  "87.3",
		"PitchCall":  "StrikeSwinging",
		"BatterSide": "Left",
		"Balls":      "1",
		"Strikes":    "2",
	}
	m, err := MapRow(datasource.VendorTrackman, row)
	if err != nil {
		t.Fatalf("map row: %v", err)
	}
	if !m.ReleaseSpeed.Present || m.ReleaseSpeed.Value != 95.1 {
		t.Fatalf("release speed: got=%+v", m.ReleaseSpeed)
	}
	if !m.ZoneSpeed.Present || m.ZoneSpeed.Value != 87.3 {
		t.Fatalf("zone speed: got=%+v", m.ZoneSpeed)
	}
	if m.PitchCall != "StrikeSwinging" || m.BatterSide != "Left" {
		t.Fatalf("game context: call=%q side=%q", m.PitchCall, m.BatterSide)
	}
	if !m.Balls.Present || m.Balls.Value != 1 || !m.Strikes.Present || m.Strikes.Value != 2 {
		t.Fatalf("count: balls=%+v strikes=%+v", m.Balls, m.Strikes)
	}
}

func TestMapRow_NonNumericCellIsError(t *testing.T) {
	t.Parallel()

	_, err := MapRow(datasource.VendorRapsodo, Row{"Velocity": "fast"})
	if err == nil {
		t.Fatalf("expected error for non-numeric velocity cell")
	}
}

func TestMapRow_UnknownVendorIsEmptyRecord(t *testing.T) {
	t.Parallel()

	m, err := MapRow(datasource.VendorUnknown, Row{"Velocity": "92.4"})
	if err != nil {
		t.Fatalf("map row: %v", err)
	}
	if m.ReleaseSpeed.Present {
		t.Fatalf("unknown vendor must map to the empty record")
	}
}

func TestPitchNumber(t *testing.T) {
	t.Parallel()

	if got := PitchNumber(Row{"PitchNo": "17"}, 4); got != 17 {
		t.Fatalf("PitchNo column: got=%d", got)
	}
	if got := PitchNumber(Row{"Pitch #": "3.0"}, 4); got != 3 {
		t.Fatalf("float pitch number: got=%d", got)
	}
	if got := PitchNumber(Row{"Velocity": "90"}, 4); got != 5 {
		t.Fatalf("fallback must be 1-based row index, got=%d", got)
	}
}

func TestRawJSON(t *testing.T) {
	t.Parallel()

	headers := []string{"Pitcher", "Velocity", "SpinRate", "Note"}
	row := Row{"Pitcher": "Okafor", "Velocity": "92.4", "SpinRate": "NA", "Note": "up and in"}

	out, err := RawJSON(headers, row)
	if err != nil {
		t.Fatalf("raw json: %v", err)
	}
	for _, want := range []string{`"Pitcher":"Okafor"`, `"Velocity":92.4`, `"SpinRate":null`, `"Note":"up and in"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("raw json missing %s: %s", want, out)
		}
	}
}
