package httpapi

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/usecase"
)

const maxUploadBytes = 32 << 20

// UploadCSV ingests one vendor CSV posted as multipart form data. The file
// part is required; source, player_id, session_date, session_type, location,
// focus, and notes are optional form fields.
func (h *Handler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadCSV")
	defer span.End()

	input, file, err := h.uploadInputFromForm(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer file.Close()

	report, err := h.uploadService.Upload(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "upload failed", "file", input.FileName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, report)
}

// PreviewCSV dry-runs detection and player matching for an uploaded CSV
// without persisting anything.
func (h *Handler) PreviewCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewCSV")
	defer span.End()

	input, file, err := h.uploadInputFromForm(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer file.Close()

	preview, err := h.uploadService.Preview(ctx, input.FileName, input.Data)
	if err != nil {
		h.logger.WarnContext(ctx, "preview failed", "file", input.FileName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, preview)
}

func (h *Handler) uploadInputFromForm(r *http.Request) (usecase.UploadInput, multipart.File, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return usecase.UploadInput{}, nil, fmt.Errorf("%w: parse multipart form: %v", usecase.ErrInvalidInput, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return usecase.UploadInput{}, nil, fmt.Errorf("%w: file part is required", usecase.ErrInvalidInput)
	}

	input := usecase.UploadInput{
		FileName:    header.Filename,
		Data:        file,
		SourceName:  strings.TrimSpace(r.FormValue("source")),
		SessionType: strings.TrimSpace(r.FormValue("session_type")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Focus:       strings.TrimSpace(r.FormValue("focus")),
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}

	if raw := strings.TrimSpace(r.FormValue("player_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			file.Close()
			return usecase.UploadInput{}, nil, fmt.Errorf("%w: player_id must be a positive integer", usecase.ErrInvalidInput)
		}
		input.PlayerID = id
	}

	if raw := strings.TrimSpace(r.FormValue("session_date")); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			file.Close()
			return usecase.UploadInput{}, nil, fmt.Errorf("%w: session_date must be YYYY-MM-DD", usecase.ErrInvalidInput)
		}
		input.SessionDate = date
	}

	return input, file, nil
}
