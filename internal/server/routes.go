package server

import (
	"log/slog"
	"net/http"

	authHandlers "starmap-server/internal/auth/handlers"
	"starmap-server/internal/middleware"
	serverHandlers "starmap-server/internal/server/handlers"
	"starmap-server/internal/shared/cookies"
	"starmap-server/internal/universe"
	worldHandlers "starmap-server/internal/universe/handlers"
)

type Routes struct {
	db           serverHandlers.Pinger
	cache        serverHandlers.Pinger
	worldService *universe.Service
	jwtSecret    string
	cookies      cookies.Settings
}

// NewRoutes takes a nil cache when redis is disabled
func NewRoutes(db serverHandlers.Pinger, cache serverHandlers.Pinger, worldService *universe.Service, jwtSecret string, cookieSettings cookies.Settings) *Routes {
	return &Routes{
		db:           db,
		cache:        cache,
		worldService: worldService,
		jwtSecret:    jwtSecret,
		cookies:      cookieSettings,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	worldHandler := worldHandlers.NewWorldHandler(r.worldService)
	sessionHandler := authHandlers.NewSessionHandler(r.jwtSecret, r.cookies)

	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(r.jwtSecret, h)
	}

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("GET /api/worlds", worldHandler.GetWorlds)
	mux.HandleFunc("GET /api/worlds/{id}", worldHandler.GetWorld)
	mux.HandleFunc("GET /api/worlds/{id}/map", worldHandler.GetWorldMap)
	mux.HandleFunc("GET /api/worlds/{id}/save", worldHandler.DownloadSave)

	// Session endpoints
	mux.HandleFunc("POST /api/auth/session", sessionHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", sessionHandler.Logout)
	mux.Handle("GET /api/auth/me", middleware.JWTMiddleware(r.jwtSecret, http.HandlerFunc(sessionHandler.Me)))

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("POST /api/worlds", admin(worldHandler.CreateWorld))
	mux.Handle("DELETE /api/worlds/{id}", admin(worldHandler.DeleteWorld))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/worlds", "/api/worlds/{id}", "/api/worlds/{id}/map", "/api/worlds/{id}/save"},
		"session_endpoints", []string{"/api/auth/session", "/api/auth/logout", "/api/auth/me"},
		"admin_endpoints", []string{"POST /api/worlds", "DELETE /api/worlds/{id}"},
	)

	return mux
}
