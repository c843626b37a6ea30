package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
)

type sessionDTO struct {
	ID           int64  `json:"id"`
	PlayerID     int64  `json:"player_id"`
	CoachID      *int64 `json:"coach_id,omitempty"`
	DataSourceID int64  `json:"data_source_id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Location     string `json:"location,omitempty"`
	Focus        string `json:"focus,omitempty"`
	Notes        string `json:"notes,omitempty"`
	TotalPitches int    `json:"total_pitches"`
}

func sessionToDTO(s session.Session) sessionDTO {
	return sessionDTO{
		ID:           s.ID,
		PlayerID:     s.PlayerID,
		CoachID:      s.CoachID,
		DataSourceID: s.DataSourceID,
		Date:         s.Date.Format(time.DateOnly),
		Type:         s.Type,
		Location:     s.Location,
		Focus:        s.Focus,
		Notes:        s.Notes,
		TotalPitches: s.TotalPitches,
	}
}

type pitchDTO struct {
	ID           int64    `json:"id"`
	Number       int      `json:"number"`
	Type         string   `json:"type"`
	Timestamp    *string  `json:"timestamp,omitempty"`
	Velocity     *float64 `json:"velocity,omitempty"`
	SpinRate     *float64 `json:"spin_rate,omitempty"`
	SpinAxis     *float64 `json:"spin_axis,omitempty"`
	HorzBreak    *float64 `json:"horizontal_break,omitempty"`
	VertBreak    *float64 `json:"induced_vertical_break,omitempty"`
	QualityScore float64  `json:"quality_score"`
	IsValid      bool     `json:"is_valid"`
}

func pitchToDTO(p pitch.Pitch) pitchDTO {
	dto := pitchDTO{
		ID:           p.ID,
		Number:       p.Number,
		Type:         p.Type,
		Velocity:     p.Metrics.ReleaseSpeed.Ptr(),
		SpinRate:     p.Metrics.SpinRate.Ptr(),
		SpinAxis:     p.Metrics.SpinAxis.Ptr(),
		HorzBreak:    p.Metrics.HorizontalBreak.Ptr(),
		VertBreak:    p.Metrics.InducedVerticalBreak.Ptr(),
		QualityScore: p.QualityScore,
		IsValid:      p.IsValid,
	}
	if p.Timestamp != nil {
		ts := p.Timestamp.Format(time.RFC3339)
		dto.Timestamp = &ts
	}
	return dto
}

func (h *Handler) ListSessionPitches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSessionPitches")
	defer span.End()

	id, err := pathID(r, "sessionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pitches, err := h.sessionService.Pitches(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "list pitches failed", "session_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pitchDTO, 0, len(pitches))
	for _, p := range pitches {
		items = append(items, pitchToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSessionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSessionSummary")
	defer span.End()

	id, err := pathID(r, "sessionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.sessionService.Summary(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "session summary failed", "session_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	byType := make([]map[string]any, 0, len(summary.ByType))
	for _, agg := range summary.ByType {
		byType = append(byType, map[string]any{
			"pitch_type":    agg.PitchType,
			"count":         agg.Count,
			"avg_velocity":  agg.AvgVelocity.Ptr(),
			"max_velocity":  agg.MaxVelocity.Ptr(),
			"avg_spin_rate": agg.AvgSpinRate.Ptr(),
			"avg_spin_axis": agg.AvgSpinAxis.Ptr(),
			"avg_quality":   agg.AvgQuality,
			"valid_pitches": agg.ValidPitches,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"session":     sessionToDTO(summary.Session),
		"player":      playerToDTO(summary.Player),
		"by_type":     byType,
		"total_count": summary.TotalCount,
		"valid_count": summary.ValidCount,
	})
}

func (h *Handler) ListDataSources(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDataSources")
	defer span.End()

	sources, err := h.sessionService.DataSources(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list data sources failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]map[string]any, 0, len(sources))
	for _, s := range sources {
		items = append(items, map[string]any{
			"id":          s.ID,
			"name":        s.Name,
			"description": s.Description,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
