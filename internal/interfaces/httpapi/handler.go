package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/pitching-analytics/internal/platform/logging"
	"github.com/riskibarqy/pitching-analytics/internal/usecase"
)

type Handler struct {
	uploadService  *usecase.UploadService
	playerService  *usecase.PlayerService
	sessionService *usecase.SessionService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	uploadService *usecase.UploadService,
	playerService *usecase.PlayerService,
	sessionService *usecase.SessionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		uploadService:  uploadService,
		playerService:  playerService,
		sessionService: sessionService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
