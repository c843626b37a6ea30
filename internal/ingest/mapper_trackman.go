package ingest

import "github.com/riskibarqy/pitching-analytics/internal/domain/pitch"

// Trackman export field mapping, including the radar-only release/approach
// angles, PITCHf/x components and contact data.
var trackmanFields = []fieldSpec{
	{aliases: []string{"RelSpeed"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseSpeed = v }},
	{aliases: []string{"SpinRate"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinRate = v }},
	{aliases: []string{"SpinAxis"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinAxis = v }},
	{aliases: []string{"Tilt"}, tilt: true, assign: func(m *pitch.Metrics, v pitch.Metric) { m.SpinAxis = v }},
	{aliases: []string{"HorzBreak"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HorizontalBreak = v }},
	{aliases: []string{"InducedVertBreak"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.InducedVerticalBreak = v }},
	{aliases: []string{"VertBreak"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.VerticalBreak = v }},
	{aliases: []string{"RelHeight"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseHeight = v }},
	{aliases: []string{"RelSide"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseSide = v }},
	{aliases: []string{"Extension"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ReleaseExtension = v }},
	{aliases: []string{"PlateLocSide"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.PlateLocationX = v }},
	{aliases: []string{"PlateLocHeight"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.PlateLocationZ = v }},
	{aliases: []string{"VertRelAngle"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.VertRelAngle = v }},
	{aliases: []string{"HorzRelAngle"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HorzRelAngle = v }},
	{aliases: []string{"VertApprAngle"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.VertApproachAngle = v }},
	{aliases: []string{"HorzApprAngle"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HorzApproachAngle = v }},
	{aliases: []string{"ZoneSpeed"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ZoneSpeed = v }},
	{aliases: []string{"pfx_x"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.PfxX = v }},
	{aliases: []string{"pfx_z"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.PfxZ = v }},
	{aliases: []string{"ContactPositionX"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ContactPositionX = v }},
	{aliases: []string{"ContactPositionZ"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ContactPositionZ = v }},
	{aliases: []string{"HitSpinRate"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HitSpinRate = v }},
	{aliases: []string{"HangTime"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.HangTime = v }},
	{aliases: []string{"Distance"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.DistanceFeet = v }},
	{aliases: []string{"Balls"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.Balls = v }},
	{aliases: []string{"Strikes"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.Strikes = v }},
	{aliases: []string{"Outs"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.Outs = v }},
	{aliases: []string{"ExitSpeed"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.ExitVelocity = v }},
	{aliases: []string{"Angle", "LaunchAngle"}, assign: func(m *pitch.Metrics, v pitch.Metric) { m.LaunchAngle = v }},
}

// mapTrackmanContext copies the non-numeric game context columns.
func mapTrackmanContext(row Row, m *pitch.Metrics) {
	if call, ok := row.Lookup("PitchCall"); ok {
		m.PitchCall = call
	}
	if side, ok := row.Lookup("BatterSide"); ok {
		m.BatterSide = side
	}
}
