package ingest

import (
	"math"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

// PitchLogic export field mapping. The sensor reports spin axis and arm slot
// in clock notation across several export versions.
var pitchlogicFields = []fieldSpec{
	{aliases: []string{"Velo", "Speed", "Speed (mph)"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseSpeed = v }},
	{aliases: []string{"Spin", "SpinRate", "Spin Rate", "Total Spin (rpm)"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinRate = v }},
	{aliases: []string{"Axis", "SpinAxis", "Spin Axis", "Spin Direction (blue)"}, tilt: true, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinAxis = v }},
	{aliases: []string{"HB", "Horizontal Break", "Horizontal Movement (in)"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HorizontalBreak = v }},
	{aliases: []string{"VB", "Vertical Break", "Vertical Movement (in)"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.VerticalBreak = v }},
	{aliases: []string{"RH", "Release Height"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseHeight = v }},
	{aliases: []string{"RS", "Release Side"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseSide = v }},
	{aliases: []string{"ArmSlot", "Arm Slot", "Arm Slot (yellow)"}, tilt: true, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ArmSlot = v }},
	{aliases: []string{"Gyro", "Rifle Spin (rpm)"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.GyroDegree = v }},
	{aliases: []string{"SpinEff", "Spin Efficiency", "Spin Efficiency (%)"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinEfficiency = v }},
	{aliases: []string{"Forward Extension (ft)", "Extension"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseExtension = v }},
}

// derivePitchLogic computes the relative spin direction, the absolute gap
// between spin axis and arm slot. Only defined when both were measured;
// otherwise the field simply stays absent.
func derivePitchLogic(m *pitch.Metrics) {
	if !m.SpinAxis.Present || !m.ArmSlot.Present {
		return
	}
	m.RelativeSpinDirection = pitch.MetricOf(math.Abs(m.SpinAxis.Value - m.ArmSlot.Value))
}
