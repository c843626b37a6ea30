package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

type pitchTableModel struct {
	ID           int64      `db:"id"`
	SessionID    int64      `db:"session_id"`
	PlayerID     int64      `db:"player_id"`
	DataSourceID int64      `db:"data_source_id"`
	PitchNumber  int        `db:"pitch_number"`
	PitchType    string     `db:"pitch_type"`
	PitchTime    *time.Time `db:"pitch_timestamp"`

	ReleaseSpeed          *float64 `db:"release_speed"`
	SpinRate              *float64 `db:"spin_rate"`
	SpinAxis              *float64 `db:"spin_axis"`
	SpinEfficiency        *float64 `db:"spin_efficiency"`
	HorizontalBreak       *float64 `db:"horizontal_break"`
	VerticalBreak         *float64 `db:"vertical_break"`
	InducedVerticalBreak  *float64 `db:"induced_vertical_break"`
	ReleaseHeight         *float64 `db:"release_height"`
	ReleaseSide           *float64 `db:"release_side"`
	ReleaseExtension      *float64 `db:"release_extension"`
	PlateLocationX        *float64 `db:"plate_location_x"`
	PlateLocationZ        *float64 `db:"plate_location_z"`
	ExitVelocity          *float64 `db:"exit_velocity"`
	LaunchAngle           *float64 `db:"launch_angle"`
	TrueSpin              *float64 `db:"true_spin"`
	SpinDirection         *float64 `db:"spin_direction"`
	BreakLength           *float64 `db:"break_length"`
	BreakY                *float64 `db:"break_y"`
	ArmSlot               *float64 `db:"arm_slot"`
	RelativeSpinDirection *float64 `db:"relative_spin_direction"`
	GyroDegree            *float64 `db:"gyro_degree"`
	VertRelAngle          *float64 `db:"vert_rel_angle"`
	HorzRelAngle          *float64 `db:"horz_rel_angle"`
	VertApproachAngle     *float64 `db:"vert_approach_angle"`
	HorzApproachAngle     *float64 `db:"horz_approach_angle"`
	ZoneSpeed             *float64 `db:"zone_speed"`
	PfxX                  *float64 `db:"pfx_x"`
	PfxZ                  *float64 `db:"pfx_z"`
	ContactPositionX      *float64 `db:"contact_position_x"`
	ContactPositionZ      *float64 `db:"contact_position_z"`
	HitSpinRate           *float64 `db:"hit_spin_rate"`
	HangTime              *float64 `db:"hang_time"`
	DistanceFeet          *float64 `db:"distance_feet"`
	Balls                 *float64 `db:"balls"`
	Strikes               *float64 `db:"strikes"`
	Outs                  *float64 `db:"outs"`

	PitchCall    sql.NullString `db:"pitch_call"`
	BatterSide   sql.NullString `db:"batter_side"`
	QualityScore float64        `db:"quality_score"`
	IsValid      bool           `db:"is_valid"`
	RawJSON      string         `db:"raw_json"`
	SourceFile   sql.NullString `db:"source_file"`
	CreatedAt    time.Time      `db:"created_at"`
}

type pitchInsertModel struct {
	SessionID    int64      `db:"session_id"`
	PlayerID     int64      `db:"player_id"`
	DataSourceID int64      `db:"data_source_id"`
	PitchNumber  int        `db:"pitch_number"`
	PitchType    string     `db:"pitch_type"`
	PitchTime    *time.Time `db:"pitch_timestamp"`

	ReleaseSpeed          *float64 `db:"release_speed"`
	SpinRate              *float64 `db:"spin_rate"`
	SpinAxis              *float64 `db:"spin_axis"`
	SpinEfficiency        *float64 `db:"spin_efficiency"`
	HorizontalBreak       *float64 `db:"horizontal_break"`
	VerticalBreak         *float64 `db:"vertical_break"`
	InducedVerticalBreak  *float64 `db:"induced_vertical_break"`
	ReleaseHeight         *float64 `db:"release_height"`
	ReleaseSide           *float64 `db:"release_side"`
	ReleaseExtension      *float64 `db:"release_extension"`
	PlateLocationX        *float64 `db:"plate_location_x"`
	PlateLocationZ        *float64 `db:"plate_location_z"`
	ExitVelocity          *float64 `db:"exit_velocity"`
	LaunchAngle           *float64 `db:"launch_angle"`
	TrueSpin              *float64 `db:"true_spin"`
	SpinDirection         *float64 `db:"spin_direction"`
	BreakLength           *float64 `db:"break_length"`
	BreakY                *float64 `db:"break_y"`
	ArmSlot               *float64 `db:"arm_slot"`
	RelativeSpinDirection *float64 `db:"relative_spin_direction"`
	GyroDegree            *float64 `db:"gyro_degree"`
	VertRelAngle          *float64 `db:"vert_rel_angle"`
	HorzRelAngle          *float64 `db:"horz_rel_angle"`
	VertApproachAngle     *float64 `db:"vert_approach_angle"`
	HorzApproachAngle     *float64 `db:"horz_approach_angle"`
	ZoneSpeed             *float64 `db:"zone_speed"`
	PfxX                  *float64 `db:"pfx_x"`
	PfxZ                  *float64 `db:"pfx_z"`
	ContactPositionX      *float64 `db:"contact_position_x"`
	ContactPositionZ      *float64 `db:"contact_position_z"`
	HitSpinRate           *float64 `db:"hit_spin_rate"`
	HangTime              *float64 `db:"hang_time"`
	DistanceFeet          *float64 `db:"distance_feet"`
	Balls                 *float64 `db:"balls"`
	Strikes               *float64 `db:"strikes"`
	Outs                  *float64 `db:"outs"`

	PitchCall    sql.NullString `db:"pitch_call"`
	BatterSide   sql.NullString `db:"batter_side"`
	QualityScore float64        `db:"quality_score"`
	IsValid      bool           `db:"is_valid"`
	RawJSON      string         `db:"raw_json"`
	SourceFile   sql.NullString `db:"source_file"`
}

func pitchInsertFrom(p pitch.Pitch) pitchInsertModel {
	m := p.Metrics
	return pitchInsertModel{
		SessionID:    p.SessionID,
		PlayerID:     p.PlayerID,
		DataSourceID: p.DataSourceID,
		PitchNumber:  p.Number,
		PitchType:    p.Type,
		PitchTime:    p.Timestamp,

		ReleaseSpeed:          m.ReleaseSpeed.Ptr(),
		SpinRate:              m.SpinRate.Ptr(),
		SpinAxis:              m.SpinAxis.Ptr(),
		SpinEfficiency:        m.SpinEfficiency.Ptr(),
		HorizontalBreak:       m.HorizontalBreak.Ptr(),
		VerticalBreak:         m.VerticalBreak.Ptr(),
		InducedVerticalBreak:  m.InducedVerticalBreak.Ptr(),
		ReleaseHeight:         m.ReleaseHeight.Ptr(),
		ReleaseSide:           m.ReleaseSide.Ptr(),
		ReleaseExtension:      m.ReleaseExtension.Ptr(),
		PlateLocationX:        m.PlateLocationX.Ptr(),
		PlateLocationZ:        m.PlateLocationZ.Ptr(),
		ExitVelocity:          m.ExitVelocity.Ptr(),
		LaunchAngle:           m.LaunchAngle.Ptr(),
		TrueSpin:              m.TrueSpin.Ptr(),
		SpinDirection:         m.SpinDirection.Ptr(),
		BreakLength:           m.BreakLength.Ptr(),
		BreakY:                m.BreakY.Ptr(),
		ArmSlot:               m.ArmSlot.Ptr(),
		RelativeSpinDirection: m.RelativeSpinDirection.Ptr(),
		GyroDegree:            m.GyroDegree.Ptr(),
		VertRelAngle:          m.VertRelAngle.Ptr(),
		HorzRelAngle:          m.HorzRelAngle.Ptr(),
		VertApproachAngle:     m.VertApproachAngle.Ptr(),
		HorzApproachAngle:     m.HorzApproachAngle.Ptr(),
		ZoneSpeed:             m.ZoneSpeed.Ptr(),
		PfxX:                  m.PfxX.Ptr(),
		PfxZ:                  m.PfxZ.Ptr(),
		ContactPositionX:      m.ContactPositionX.Ptr(),
		ContactPositionZ:      m.ContactPositionZ.Ptr(),
		HitSpinRate:           m.HitSpinRate.Ptr(),
		HangTime:              m.HangTime.Ptr(),
		DistanceFeet:          m.DistanceFeet.Ptr(),
		Balls:                 m.Balls.Ptr(),
		Strikes:               m.Strikes.Ptr(),
		Outs:                  m.Outs.Ptr(),

		PitchCall:    nullString(m.PitchCall),
		BatterSide:   nullString(m.BatterSide),
		QualityScore: p.QualityScore,
		IsValid:      p.IsValid,
		RawJSON:      p.RawJSON,
		SourceFile:   nullString(p.SourceFile),
	}
}

func pitchFromRow(row pitchTableModel) pitch.Pitch {
	return pitch.Pitch{
		ID:           row.ID,
		SessionID:    row.SessionID,
		PlayerID:     row.PlayerID,
		DataSourceID: row.DataSourceID,
		Number:       row.PitchNumber,
		Type:         row.PitchType,
		Timestamp:    row.PitchTime,
		Metrics: pitch.Metrics{
			ReleaseSpeed:          metricOfPtr(row.ReleaseSpeed),
			SpinRate:              metricOfPtr(row.SpinRate),
			SpinAxis:              metricOfPtr(row.SpinAxis),
			SpinEfficiency:        metricOfPtr(row.SpinEfficiency),
			HorizontalBreak:       metricOfPtr(row.HorizontalBreak),
			VerticalBreak:         metricOfPtr(row.VerticalBreak),
			InducedVerticalBreak:  metricOfPtr(row.InducedVerticalBreak),
			ReleaseHeight:         metricOfPtr(row.ReleaseHeight),
			ReleaseSide:           metricOfPtr(row.ReleaseSide),
			ReleaseExtension:      metricOfPtr(row.ReleaseExtension),
			PlateLocationX:        metricOfPtr(row.PlateLocationX),
			PlateLocationZ:        metricOfPtr(row.PlateLocationZ),
			ExitVelocity:          metricOfPtr(row.ExitVelocity),
			LaunchAngle:           metricOfPtr(row.LaunchAngle),
			TrueSpin:              metricOfPtr(row.TrueSpin),
			SpinDirection:         metricOfPtr(row.SpinDirection),
			BreakLength:           metricOfPtr(row.BreakLength),
			BreakY:                metricOfPtr(row.BreakY),
			ArmSlot:               metricOfPtr(row.ArmSlot),
			RelativeSpinDirection: metricOfPtr(row.RelativeSpinDirection),
			GyroDegree:            metricOfPtr(row.GyroDegree),
			VertRelAngle:          metricOfPtr(row.VertRelAngle),
			HorzRelAngle:          metricOfPtr(row.HorzRelAngle),
			VertApproachAngle:     metricOfPtr(row.VertApproachAngle),
			HorzApproachAngle:     metricOfPtr(row.HorzApproachAngle),
			ZoneSpeed:             metricOfPtr(row.ZoneSpeed),
			PfxX:                  metricOfPtr(row.PfxX),
			PfxZ:                  metricOfPtr(row.PfxZ),
			ContactPositionX:      metricOfPtr(row.ContactPositionX),
			ContactPositionZ:      metricOfPtr(row.ContactPositionZ),
			HitSpinRate:           metricOfPtr(row.HitSpinRate),
			HangTime:              metricOfPtr(row.HangTime),
			DistanceFeet:          metricOfPtr(row.DistanceFeet),
			Balls:                 metricOfPtr(row.Balls),
			Strikes:               metricOfPtr(row.Strikes),
			Outs:                  metricOfPtr(row.Outs),
			PitchCall:             nullStringValue(row.PitchCall),
			BatterSide:            nullStringValue(row.BatterSide),
		},
		QualityScore: row.QualityScore,
		IsValid:      row.IsValid,
		RawJSON:      row.RawJSON,
		SourceFile:   nullStringValue(row.SourceFile),
	}
}
