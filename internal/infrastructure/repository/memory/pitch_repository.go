package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
)

type PitchRepository struct {
	mu      sync.RWMutex
	nextID  int64
	pitches []pitch.Pitch
}

func NewPitchRepository() *PitchRepository {
	return &PitchRepository{}
}

func (r *PitchRepository) Insert(_ context.Context, p pitch.Pitch) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.pitches = append(r.pitches, p)
	return p.ID, nil
}

func (r *PitchRepository) ListBySession(_ context.Context, sessionID int64) ([]pitch.Pitch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []pitch.Pitch
	for _, p := range r.pitches {
		if p.SessionID != sessionID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PitchRepository) AggregateBySession(_ context.Context, sessionID int64) ([]pitch.TypeAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type acc struct {
		agg       pitch.TypeAggregate
		veloSum   float64
		veloN     int
		spinSum   float64
		spinN     int
		axisSum   float64
		axisN     int
		scoreSum  float64
	}

	var order []string
	byType := map[string]*acc{}
	for _, p := range r.pitches {
		if p.SessionID != sessionID {
			continue
		}
		a, ok := byType[p.Type]
		if !ok {
			a = &acc{agg: pitch.TypeAggregate{PitchType: p.Type}}
			byType[p.Type] = a
			order = append(order, p.Type)
		}

		a.agg.Count++
		a.scoreSum += p.QualityScore
		if p.IsValid {
			a.agg.ValidPitches++
		}
		if v := p.Metrics.ReleaseSpeed; v.Present {
			a.veloSum += v.Value
			a.veloN++
			if !a.agg.MaxVelocity.Present || v.Value > a.agg.MaxVelocity.Value {
				a.agg.MaxVelocity = v
			}
		}
		if v := p.Metrics.SpinRate; v.Present {
			a.spinSum += v.Value
			a.spinN++
		}
		if v := p.Metrics.SpinAxis; v.Present {
			a.axisSum += v.Value
			a.axisN++
		}
	}

	out := make([]pitch.TypeAggregate, 0, len(order))
	for _, name := range order {
		a := byType[name]
		if a.veloN > 0 {
			a.agg.AvgVelocity = pitch.MetricOf(a.veloSum / float64(a.veloN))
		}
		if a.spinN > 0 {
			a.agg.AvgSpinRate = pitch.MetricOf(a.spinSum / float64(a.spinN))
		}
		if a.axisN > 0 {
			a.agg.AvgSpinAxis = pitch.MetricOf(a.axisSum / float64(a.axisN))
		}
		if a.agg.Count > 0 {
			a.agg.AvgQuality = a.scoreSum / float64(a.agg.Count)
		}
		out = append(out, a.agg)
	}
	return out, nil
}
