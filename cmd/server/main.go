package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starmap-server/internal/middleware"
	"starmap-server/internal/server"
	serverHandlers "starmap-server/internal/server/handlers"
	"starmap-server/internal/shared/config"
	"starmap-server/internal/shared/cookies"
	"starmap-server/internal/shared/database"
	"starmap-server/internal/shared/logger"
	"starmap-server/internal/shared/redis"
	"starmap-server/internal/universe"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.GlobalConfig

	logger.Init(cfg.Logging, cfg.Server.Environment)
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	var (
		cache       universe.Cache
		cachePinger serverHandlers.Pinger
	)
	if redisClient != nil {
		cache = universe.NewRedisCache(redisClient, cfg.Saves.CacheTTL, slog.Default())
		cachePinger = redisClient
	}

	repo := universe.NewRepository(db, slog.Default())
	worldService := universe.NewService(repo, cache, universe.ParamsFromConfig(cfg.Generation), cfg.Saves.Dir, slog.Default())

	mux := server.NewRoutes(db, cachePinger, worldService, cfg.Auth.JWTSecret, cookies.NewSettings(cfg.Auth, cfg.Frontend)).Setup()

	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimit)
	cors := middleware.NewCORS(cfg.Frontend)
	handler := cors.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starmap server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
