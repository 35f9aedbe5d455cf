package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"swapi-server/internal/people"
	"swapi-server/internal/planet"
	"swapi-server/internal/server"
	"swapi-server/internal/shared/config"
	"swapi-server/internal/shared/database"
	"swapi-server/internal/shared/logger"
	"swapi-server/internal/shared/redis"
	"swapi-server/internal/shared/tracing"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	logger := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sensor := tracing.Init(cfg.Tracing)

	db, err := database.Connect(ctx, sensor)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	logger.Info("Running database migrations", "path", cfg.Database.MigrationsPath)
	if err := db.RunMigrations(ctx, os.DirFS(cfg.Database.MigrationsPath)); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close redis", "error", err)
		}
	}()

	var planetCache planet.Cache
	if redisClient != nil {
		planetCache = planet.NewRedisCache(redisClient.Client, cfg.Redis.PlanetTTL, slog.Default())
	}

	planetService := planet.NewService(planet.NewRepository(db, slog.Default()), planetCache, slog.Default())
	peopleService := people.NewService(people.NewRepository(db, slog.Default()), planetService, slog.Default())

	routes := server.NewRoutes(db, peopleService, planetService, cfg, sensor, slog.Default())
	defer routes.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
