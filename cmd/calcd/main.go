package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"deskcalc/internal/config"
	"deskcalc/internal/history"
	"deskcalc/internal/observability"
	"deskcalc/internal/server"
	"deskcalc/internal/session"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	// Logger
	err := observability.InitLogger()
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Log export
	logShutdown, err := observability.InitLogging(ctx)
	if err != nil {
		panic(err)
	}
	defer logShutdown(ctx)

	// Tracing
	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		panic(err)
	}
	defer traceShutdown(ctx)

	// Metrics
	metricShutdown, err := initMetrics(ctx)
	if err != nil {
		panic(err)
	}
	defer metricShutdown(ctx)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	store := openHistory(cfg)
	if store != nil {
		defer store.Close()
	}

	// Router
	router := server.NewRouter(session.NewManager(store))

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started", zap.String("addr", cfg.Server.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	waitForShutdown(srv)
}

// openHistory opens the evaluation store when enabled. Failures are logged
// and the service runs without persistence rather than refusing to start.
func openHistory(cfg config.Config) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err != nil {
		observability.Logger.Warn("creating history directory failed",
			zap.String("path", cfg.History.Path),
			zap.Error(err),
		)
		return nil
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		observability.Logger.Warn("opening history store failed",
			zap.String("path", cfg.History.Path),
			zap.Error(err),
		)
		return nil
	}
	return store
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
