package ingest

import "github.com/riskibarqy/pitching-analytics/internal/domain/pitch"

// Rapsodo export field mapping. Order matters for spin axis: the numeric
// SpinAxis column maps first, then a present Tilt column overrides it with
// the clock conversion.
var rapsodoFields = []fieldSpec{
	{aliases: []string{"Velocity", "RelSpeed"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseSpeed = v }},
	{aliases: []string{"SpinRate"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinRate = v }},
	{aliases: []string{"SpinAxis"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinAxis = v }},
	{aliases: []string{"Tilt"}, tilt: true, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinAxis = v }},
	{aliases: []string{"SpinEff"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinEfficiency = v }},
	{aliases: []string{"HorzBreak"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HorizontalBreak = v }},
	{aliases: []string{"InducedVertBreak", "iVB"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.InducedVerticalBreak = v }},
	{aliases: []string{"VertBreak"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.VerticalBreak = v }},
	{aliases: []string{"RelHeight"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseHeight = v }},
	{aliases: []string{"RelSide"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseSide = v }},
	{aliases: []string{"Extension"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseExtension = v }},
	{aliases: []string{"PlateLocSide"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.PlateLocationX = v }},
	{aliases: []string{"PlateLocHeight"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.PlateLocationZ = v }},
	{aliases: []string{"TrueSpin"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.TrueSpin = v }},
	{aliases: []string{"BreakLength"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.BreakLength = v }},
	{aliases: []string{"BreakY"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.BreakY = v }},
	{aliases: []string{"SpinDirection"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinDirection = v }},
	{aliases: []string{"ExitSpeed"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ExitVelocity = v }},
	{aliases: []string{"Angle"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.LaunchAngle = v }},
}
