package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/transferworks/storage-transfer-backend/pkg/config"
	"github.com/transferworks/storage-transfer-backend/pkg/instrumentation"
	"github.com/transferworks/storage-transfer-backend/pkg/router"
)

func main() {
	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	config.Load()
	config.ConfigureLogging()

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())

	apiServer := router.ConfigureEchoWithMetrics(ctx, metrics)
	metricsServer := configureMetricsServer(ctx, metrics)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Msgf("api service starting")
		err := apiServer.Start(":8000")
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Msgf("error starting api service: %s", err.Error())
		}
		log.Info().Msgf("api service stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Msgf("metrics service starting")
		err := metricsServer.Start(":" + strconv.Itoa(config.Get().Metrics.Port))
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Msgf("error starting metrics service: %s", err.Error())
		}
		log.Info().Msgf("metrics service stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		log.Logger.Info().Msgf("stopping services")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Msgf("error shutting down api service: %s", err.Error())
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Msgf("error shutting down metrics service: %s", err.Error())
		}
	}()

	<-quit
	cancel()
	wg.Wait()
}

func configureMetricsServer(ctx context.Context, metrics *instrumentation.Metrics) *echo.Echo {
	e := router.ConfigureEcho(ctx, false)
	e.Add(http.MethodGet, config.Get().Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(
		metrics.Registry(),
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
			// Pass custom registry
			Registry: metrics.Registry(),
		},
	)))
	return e
}
