// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"fittrack/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	workouts    *app.WorkoutService
	stats       *app.StatsService
	authSvc     *app.AuthService
	oidcConfig  OIDCConfig
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(ws *app.WorkoutService, ss *app.StatsService, as *app.AuthService, oidcCfg OIDCConfig) *Server {
	return &Server{workouts: ws, stats: ss, authSvc: as, oidcConfig: oidcCfg}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("/workouts", s.handleWorkouts)
	protected.HandleFunc("/workouts/preview", s.handleWorkoutPreview)
	protected.HandleFunc("/workouts/undo-last", s.handleWorkoutUndoLast)
	protected.HandleFunc("/stats/today", s.handleStatsToday)
	protected.HandleFunc("/stats/daily", s.handleStatsDaily)

	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
