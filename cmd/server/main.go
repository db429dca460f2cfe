// Command server starts the course recommendation HTTP server.
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

	"github.com/redis/go-redis/v9"

	"github.com/yap1co/coursefit/internal/adapter/cache"
	httpserver "github.com/yap1co/coursefit/internal/adapter/httpserver"
	"github.com/yap1co/coursefit/internal/adapter/observability"
	"github.com/yap1co/coursefit/internal/adapter/repo/postgres"
	filesettings "github.com/yap1co/coursefit/internal/adapter/settings"
	"github.com/yap1co/coursefit/internal/app"
	"github.com/yap1co/coursefit/internal/config"
	"github.com/yap1co/coursefit/internal/domain"
	"github.com/yap1co/coursefit/internal/engine"
	"github.com/yap1co/coursefit/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL, cfg.DBConnectMaxElapsed)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer func() { _ = rdb.Close() }()
	}

	// Collaborators
	catalog := postgres.NewCatalogRepo(pool, cfg.CatalogLimit)
	feedbackRepo := postgres.NewFeedbackRepo(pool)
	quartiles := cache.NewQuartileCache(postgres.NewQuartileRepo(pool), rdb, cfg.QuartileCacheTTL)
	runs := postgres.NewRunRepo(pool)

	var settingsStore domain.SettingsStore
	if cfg.SettingsFile != "" {
		settingsStore = filesettings.NewFileStore(cfg.SettingsFile)
		slog.Info("engine settings served from file", slog.String("path", cfg.SettingsFile))
	} else {
		settingsStore = postgres.NewSettingsRepo(pool)
	}

	// Engine
	eng := engine.New(catalog, feedbackRepo, quartiles, settingsStore, engine.Params{
		TopK:               cfg.TopK,
		ResultLimit:        cfg.ResultLimit,
		AdmissionThreshold: cfg.AdmissionThreshold,
	})
	eng.Refresh(ctx)

	// Usecases
	recSvc := usecase.NewRecommendService(eng, runs)
	fbSvc := usecase.NewFeedbackService(feedbackRepo)

	dbCheck, redisCheck := app.BuildReadinessChecks(pool, rdb)
	srv := httpserver.NewServer(cfg, recSvc, fbSvc, dbCheck, redisCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
