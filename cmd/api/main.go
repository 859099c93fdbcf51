package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bryanwahyu/scamwatch/internal/application"
	appdisputes "github.com/bryanwahyu/scamwatch/internal/application/disputes"
	appreports "github.com/bryanwahyu/scamwatch/internal/application/reports"
	"github.com/bryanwahyu/scamwatch/internal/config"
	"github.com/bryanwahyu/scamwatch/internal/infra/httpserver"
	"github.com/bryanwahyu/scamwatch/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if c.Level != "" {
		lvl, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := application.SystemClock{}

	st, err := openStores(ctx, cfg, clock)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	checkers := map[string]middleware.HealthChecker{}
	if st.db != nil {
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: st.db}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	defer limiter.Stop()

	reportsSvc := &appreports.Service{Repo: st.reports, Clock: clock}
	disputesSvc := &appdisputes.Service{Repo: st.disputes}

	handler := httpserver.NewRouter(reportsSvc, disputesSvc, httpserver.Options{
		Logger:         logger,
		Metrics:        middleware.NewMetrics(),
		RateLimiter:    limiter,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		HealthCheckers: checkers,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	// graceful shutdown
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
