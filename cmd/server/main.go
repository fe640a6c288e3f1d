package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"stellarforge/internal/accretion"
	"stellarforge/internal/auth"
	"stellarforge/internal/middleware"
	"stellarforge/internal/planet"
	"stellarforge/internal/server"
	"stellarforge/internal/shared/config"
	"stellarforge/internal/shared/database"
	"stellarforge/internal/shared/logger"
	"stellarforge/internal/shared/redis"
	"stellarforge/internal/stats"
	"stellarforge/internal/system"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Init()
	log := slog.With("component", "main")

	db, err := database.Connect()
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	log.Info("Running database migrations")
	if err := db.RunMigrations(); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.Connect()
	if err != nil {
		log.Warn("Failed to connect to Redis, continuing without cache", "error", err)
		redisClient = nil
	}
	defer redisClient.Close()

	constants := accretion.DefaultDoleConstants()
	constants.MaxInjections = config.GlobalConfig.Accretion.MaxInjections
	constants.OutermostPlanet = config.GlobalConfig.Accretion.OutermostPlanetAU

	systemRepo := system.NewRepository(db, slog.Default())
	planetRepo := planet.NewRepository(db, slog.Default())
	statsRepo := stats.NewRepository(db, slog.Default())
	cache := system.NewCache(redisClient, config.GlobalConfig.Redis.TTL, slog.Default())
	systemService := system.NewService(systemRepo, planetRepo, statsRepo, cache, db, constants, slog.Default())

	authService := auth.NewService(slog.Default())

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: config.GlobalConfig.RateLimit.RequestsPerSecond,
		BurstSize:         config.GlobalConfig.RateLimit.BurstSize,
		Enabled:           config.GlobalConfig.RateLimit.Enabled,
		TrustProxy:        false,
	})

	routes := server.NewRoutes(db, systemService, authService, rateLimiter, slog.Default())
	mux := routes.Setup()

	cors := middleware.NewCORS()
	handler := cors.Middleware(mux)

	srv := &http.Server{
		Addr:         ":" + config.GlobalConfig.Server.Port,
		Handler:      handler,
		ReadTimeout:  config.GlobalConfig.Server.ReadTimeout,
		WriteTimeout: config.GlobalConfig.Server.WriteTimeout,
		IdleTimeout:  config.GlobalConfig.Server.IdleTimeout,
	}

	log.Info("stellarforge server starting", "port", config.GlobalConfig.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
