package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/popo0015/body-tracker/internal/api"
	"github.com/popo0015/body-tracker/internal/config"
	"github.com/popo0015/body-tracker/internal/logger"
	"github.com/popo0015/body-tracker/internal/repository/postgres"
	sessionRedis "github.com/popo0015/body-tracker/internal/repository/redis"
	"github.com/popo0015/body-tracker/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL, logger.GormLevel(cfg.Environment))
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	if cfg.SessionStore == config.SessionStoreRedis {
		client, err := sessionRedis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("failed to connect to redis", "error", err)
		}
		defer client.Close()
		repos.Session = sessionRedis.NewSessionRepository(client)
	}

	// Initialize services
	services := service.NewServices(repos, cfg)

	if cfg.SessionSweepInterval > 0 {
		go services.Session.RunSweeper(ctx, cfg.SessionSweepInterval, sugar)
	}

	// Initialize router
	router := api.NewRouter(services, cfg, zl)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     logger.StdLog(zl),
	}

	go func() {
		sugar.Infow("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"sessionStore", cfg.SessionStore,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	sugar.Info("server stopped")
}
