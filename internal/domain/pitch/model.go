package pitch

import (
	"fmt"
	"time"
)

// Metrics is the canonical pitch-metric record every vendor row is mapped
// onto. Numeric fields are Metric so "not measured" stays distinct from a
// measured zero; the game-context strings keep the vendor spelling.
type Metrics struct {
	ReleaseSpeed          Metric
	SpinRate              Metric
	SpinAxis              Metric
	SpinEfficiency        Metric
	HorizontalBreak       Metric
	VerticalBreak         Metric
	InducedVerticalBreak  Metric
	ReleaseHeight         Metric
	ReleaseSide           Metric
	ReleaseExtension      Metric
	PlateLocationX        Metric
	PlateLocationZ        Metric
	ExitVelocity          Metric
	LaunchAngle           Metric
	TrueSpin              Metric
	SpinDirection         Metric
	BreakLength           Metric
	BreakY                Metric
	ArmSlot               Metric
	RelativeSpinDirection Metric
	GyroDegree            Metric
	VertRelAngle          Metric
	HorzRelAngle          Metric
	VertApproachAngle     Metric
	HorzApproachAngle     Metric
	ZoneSpeed             Metric
	PfxX                  Metric
	PfxZ                  Metric
	ContactPositionX      Metric
	ContactPositionZ      Metric
	HitSpinRate           Metric
	HangTime              Metric
	DistanceFeet          Metric
	Balls                 Metric
	Strikes               Metric
	Outs                  Metric
	PitchCall             string
	BatterSide            string
}

// Pitch is one persisted pitch event. Records are append-only: created once
// at ingestion time and never mutated afterward.
type Pitch struct {
	ID           int64
	SessionID    int64
	PlayerID     int64
	DataSourceID int64
	Number       int
	Type         string
	Timestamp    *time.Time
	Metrics      Metrics
	QualityScore float64
	IsValid      bool
	RawJSON      string
	SourceFile   string
}

func (p Pitch) Validate() error {
	if p.SessionID <= 0 {
		return fmt.Errorf("pitch session id is required")
	}
	if p.PlayerID <= 0 {
		return fmt.Errorf("pitch player id is required")
	}
	if p.DataSourceID <= 0 {
		return fmt.Errorf("pitch data source id is required")
	}
	if p.QualityScore < 0 || p.QualityScore > 1 {
		return fmt.Errorf("pitch quality score must be within [0,1], got %v", p.QualityScore)
	}
	return nil
}

// TypeAggregate is a per-pitch-type rollup for one session, backing the
// session summary view.
type TypeAggregate struct {
	PitchType    string
	Count        int
	AvgVelocity  Metric
	MaxVelocity  Metric
	AvgSpinRate  Metric
	AvgSpinAxis  Metric
	AvgQuality   float64
	ValidPitches int
}
