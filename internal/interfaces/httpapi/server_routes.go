package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/leaderboards", handler.ListLeaderboards)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/leaderboards/{kind}", handler.GetLeaderboard)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recompute-season", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeSeasonJob)))
	mux.Handle("POST /v1/internal/jobs/recompute-all", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeAllJob)))
}
