package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/uploads", handler.UploadCSV)
	mux.HandleFunc("POST /v1/uploads/preview", handler.PreviewCSV)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/sessions", handler.ListPlayerSessions)

	mux.HandleFunc("GET /v1/sessions/{sessionID}/pitches", handler.ListSessionPitches)
	mux.HandleFunc("GET /v1/sessions/{sessionID}/summary", handler.GetSessionSummary)

	mux.HandleFunc("GET /v1/data-sources", handler.ListDataSources)
}
