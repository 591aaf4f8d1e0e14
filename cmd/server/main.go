package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/whiskerforge/catcombo/api/internal/auth"
	"github.com/whiskerforge/catcombo/api/internal/config"
	"github.com/whiskerforge/catcombo/api/internal/handler"
	"github.com/whiskerforge/catcombo/api/internal/logger"
	"github.com/whiskerforge/catcombo/api/internal/middleware"
	"github.com/whiskerforge/catcombo/api/internal/repository"
	"github.com/whiskerforge/catcombo/api/internal/repository/file"
	"github.com/whiskerforge/catcombo/api/internal/repository/postgres"
	redisrepo "github.com/whiskerforge/catcombo/api/internal/repository/redis"
	"github.com/whiskerforge/catcombo/api/internal/service"
)

func main() {
	logger.Init()
	cfg := config.Load()
	log.Info().Str("dataSource", cfg.DataSource).Msg("Config loaded")

	// Catalog source
	var source repository.CatalogSource
	switch cfg.DataSource {
	case "postgres":
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Database connection failed")
		}
		defer db.Close()
		source = postgres.NewCatalogRepo(db)
	case "file":
		source = file.NewSource(cfg.UnitsPath, cfg.CombosPath)
	default:
		log.Fatal().Str("dataSource", cfg.DataSource).Msg("Unknown data source")
	}

	// Result cache (optional)
	var cache repository.SearchCache
	if cfg.RedisURL != "" {
		redisClient, err := redisrepo.NewClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		defer redisClient.Close()
		cache = redisClient
	}

	// Auth
	tokenMgr := auth.NewTokenManager(cfg.JWTSecret)

	// WebSocket hub
	wsHub := handler.NewHub()

	// Service
	comboSvc := service.NewComboService(source, cache, cfg.CacheTTL, cfg.RosterPath)
	comboSvc.SetBroadcaster(wsHub)

	// Tables must be loaded before any query is served.
	if err := comboSvc.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Catalog load failed")
	}

	// Handlers
	comboHandler := handler.NewComboHandler(comboSvc)
	adminHandler := handler.NewAdminHandler(comboSvc)
	wsHandler := handler.NewWSHandler(wsHub)

	// Router
	mux := http.NewServeMux()
	authMw := auth.Middleware(tokenMgr)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public API routes
	api := http.NewServeMux()
	api.HandleFunc("GET /effect-types", comboHandler.EffectTypes)
	api.HandleFunc("GET /find-combinations", comboHandler.FindCombinations)
	api.HandleFunc("GET /combos", comboHandler.ListCombos)
	api.HandleFunc("GET /combos/available", comboHandler.AvailableCombos)
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api))

	// Admin routes (JWT protected)
	admin := http.NewServeMux()
	admin.HandleFunc("POST /reload", adminHandler.Reload)
	admin.HandleFunc("GET /catalog", adminHandler.Info)
	mux.Handle("/api/v1/admin/", http.StripPrefix("/api/v1/admin", authMw(admin)))

	// WebSocket
	mux.HandleFunc("GET /api/v1/ws", wsHandler.ServeWS)

	// Apply global middleware
	root := middleware.Chain(mux, middleware.Logger, middleware.CORS(cfg.AllowedOrigins), middleware.JSON)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}
