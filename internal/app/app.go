// Package app собирает и запускает все подсистемы сервиса.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/giftnama/internal/health"
	"github.com/vladislavdragonenkov/giftnama/internal/httpapi"
	"github.com/vladislavdragonenkov/giftnama/internal/seed"
	"github.com/vladislavdragonenkov/giftnama/internal/service/catalog"
	"github.com/vladislavdragonenkov/giftnama/internal/service/checkout"
	"github.com/vladislavdragonenkov/giftnama/internal/version"
)

// Run поднимает HTTP API и сервер метрик, блокируется до отмены ctx
// или фатальной ошибки сервера.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps := NewDependencies(ctx, cfg, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.Close(closeCtx)
	}()

	if deps.Products != nil {
		if err := seed.Products(ctx, deps.Products, logger.WithField("component", "seed")); err != nil {
			logger.WithError(err).Warn("failed to seed demo catalog")
		}
	}

	catalogSvc := catalog.NewService(deps.Products, deps.Metrics, logger.WithField("component", "catalog-service"))
	checkoutSvc := checkout.NewService(
		deps.Products,
		deps.Orders,
		deps.EventPublisher(),
		deps.Metrics,
		cfg.StrictPersistence,
		logger.WithField("component", "checkout-service"),
	)

	handler := httpapi.NewHandler(catalogSvc, checkoutSvc, httpapi.Diagnostics{
		Store:           deps.Store,
		DatabaseURLSet:  cfg.DatabaseURL != "",
		DatabaseNameSet: cfg.DatabaseName != "",
	}, logger.WithField("component", "http-api"))

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if deps.Store != nil {
		store := deps.Store
		healthHandler.RegisterChecker("mongodb", healthcheck.NewSimpleChecker("mongodb", func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			return store.Ping(pingCtx)
		}))
	} else {
		healthHandler.RegisterChecker("mongodb", healthcheck.NewDegradedChecker("mongodb", "store is not configured"))
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	apiSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startMetricsServer запускает служебный HTTP-сервер /metrics и health-проверок.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez", addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
