package httpapi

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, registry *metrics.Registry) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if registry == nil {
		return
	}
	mux.Handle("GET /metrics", registry.Handler())
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{name}/submission", handler.GetSubmissionStatus)
	mux.HandleFunc("GET /v1/window", handler.GetWindow)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	mux.HandleFunc("POST /v1/submissions", handler.SubmitStats)
	mux.HandleFunc("POST /v1/teams", handler.DrawTeams)

	mux.HandleFunc("POST /v1/admin/session", handler.AdminLogin)
	mux.HandleFunc("DELETE /v1/admin/session", handler.AdminLogout)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, sessions *scs.SessionManager) {
	admin := func(fn http.HandlerFunc) http.Handler {
		return RequireAdmin(sessions, fn)
	}

	mux.Handle("GET /v1/admin/players/{name}/stats", admin(handler.AdminGetPlayerStats))
	mux.Handle("PUT /v1/admin/players/{name}/stats", admin(handler.AdminSetPlayerStats))
	mux.Handle("GET /v1/admin/game-settings", admin(handler.AdminGetGameSettings))
	mux.Handle("POST /v1/admin/game-settings", admin(handler.AdminSetGameSettings))
	mux.Handle("DELETE /v1/admin/game-settings", admin(handler.AdminClearGameSettings))
	mux.Handle("POST /v1/admin/reset", admin(handler.AdminReset))
}
