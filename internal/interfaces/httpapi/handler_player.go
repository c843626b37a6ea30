package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/usecase"
)

type playerDTO struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Throws       string `json:"throws"`
	Active       bool   `json:"active"`
	RapsodoID    string `json:"rapsodo_id,omitempty"`
	PitchLogicID string `json:"pitchlogic_id,omitempty"`
	TrackmanID   string `json:"trackman_id,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		FullName:     p.FullName(),
		Throws:       string(p.Throws),
		Active:       p.Active,
		RapsodoID:    p.RapsodoID,
		PitchLogicID: p.PitchLogicID,
		TrackmanID:   p.TrackmanID,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListActive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

type createPlayerRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Throws       string `json:"throws" validate:"omitempty,oneof=R L"`
	RapsodoID    string `json:"rapsodo_id" validate:"omitempty,max=50"`
	PitchLogicID string `json:"pitchlogic_id" validate:"omitempty,max=50"`
	TrackmanID   string `json:"trackman_id" validate:"omitempty,max=50"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.playerService.Create(ctx, player.Player{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Throws:       player.Hand(req.Throws),
		RapsodoID:    req.RapsodoID,
		PitchLogicID: req.PitchLogicID,
		TrackmanID:   req.TrackmanID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayerSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSessions")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sessions, err := h.sessionService.ListByPlayer(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "list sessions failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sessionDTO, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, sessionToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
