package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaughan-dsouza/bistro/internal/auth"
	"github.com/vaughan-dsouza/bistro/internal/cache"
	"github.com/vaughan-dsouza/bistro/internal/config"
	"github.com/vaughan-dsouza/bistro/internal/db"
	"github.com/vaughan-dsouza/bistro/internal/handlers"
	"github.com/vaughan-dsouza/bistro/internal/logger"
	"github.com/vaughan-dsouza/bistro/internal/middleware"
	"github.com/vaughan-dsouza/bistro/internal/repository"
	"github.com/vaughan-dsouza/bistro/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("api", slog.LevelInfo).Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New("api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Connect(ctx, cfg, log)
	if err != nil {
		log.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn.DB, log); err != nil {
		log.Error("db migrate", "error", err)
		os.Exit(1)
	}

	gateway := db.NewGateway(dbConn)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	var menuCache service.Cache
	if cfg.RedisAddr != "" {
		rc := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn("redis unreachable, menu served from database only", "error", err)
		}
		menuCache = rc
	}

	accounts := service.NewAccountService(repository.NewUserRepository(gateway), tokens, cfg.BcryptCost, log)
	catalog := service.NewCatalogService(repository.NewMenuRepository(gateway), menuCache, cfg.MenuCacheTTL, log)
	reservations := service.NewReservationService(repository.NewReservationRepository(gateway), log)

	h := handlers.NewHandler(accounts, catalog, reservations, gateway, log, cfg.Debug())
	r := handlers.NewRouter(h, accounts, cfg, log, middleware.NewMetrics())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
