package server

import (
	"log/slog"
	"net/http"

	"stellarforge/internal/auth"
	"stellarforge/internal/middleware"
	serverHandlers "stellarforge/internal/server/handlers"
	"stellarforge/internal/shared/database"
	"stellarforge/internal/system"
)

type Routes struct {
	db            *database.DB
	systemService *system.Service
	authService   *auth.Service
	rateLimiter   *middleware.RateLimiter
	logger        *slog.Logger
}

func NewRoutes(db *database.DB, systemService *system.Service, authService *auth.Service, rateLimiter *middleware.RateLimiter, logger *slog.Logger) *Routes {
	return &Routes{
		db:            db,
		systemService: systemService,
		authService:   authService,
		rateLimiter:   rateLimiter,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	authHandler := serverHandlers.NewAuthHandler(r.authService, r.logger)
	systemHandler := serverHandlers.NewSystemHandler(r.systemService, r.logger)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)
	mux.HandleFunc("/api/systems/{id}", systemHandler.GetByID)
	mux.HandleFunc("/api/systems/{id}/planets", systemHandler.GetPlanets)
	mux.HandleFunc("/api/systems/{id}/stats", systemHandler.GetStats)
	mux.HandleFunc("/api/stats/aggregate", systemHandler.GetStatsAggregate)

	// Rate-limited: one accretion run is real CPU work
	mux.Handle("/api/systems/generate", r.rateLimiter.Middleware(http.HandlerFunc(systemHandler.Generate)))

	// Admin-only endpoints
	mux.Handle("/api/systems/{id}/regenerate", middleware.RequireAdmin(http.HandlerFunc(systemHandler.Regenerate)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{
			"/api/server/health", "/api/auth/login", "/api/auth/logout",
			"/api/systems/{id}", "/api/systems/{id}/planets", "/api/systems/{id}/stats",
			"/api/stats/aggregate", "/api/systems/generate",
		},
		"admin_endpoints", []string{"/api/systems/{id}/regenerate"},
	)

	return mux
}
