package router

import (
	"context"
	"time"

	"github.com/content-services/lecho/v3"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/transferworks/storage-transfer-backend/pkg/config"
	"github.com/transferworks/storage-transfer-backend/pkg/handler"
	"github.com/transferworks/storage-transfer-backend/pkg/instrumentation"
	"github.com/transferworks/storage-transfer-backend/pkg/middleware"
)

func ConfigureEcho(ctx context.Context, allRoutes bool) *echo.Echo {
	return configureEcho(ctx, allRoutes, nil)
}

func ConfigureEchoWithMetrics(ctx context.Context, metrics *instrumentation.Metrics) *echo.Echo {
	e := configureEcho(ctx, true, metrics)
	e.Use(instrumentation.MetricsMiddlewareWithConfig(&instrumentation.MetricsConfig{Metrics: metrics}))
	return e
}

func configureEcho(ctx context.Context, allRoutes bool, metrics *instrumentation.Metrics) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = config.CustomHTTPErrorHandler
	// Add global middlewares
	echoLogger := lecho.From(log.Logger,
		lecho.WithTimestamp(),
		lecho.WithCaller(),
	)

	e.Use(middleware.AddRequestId)
	e.Use(lecho.Middleware(lecho.Config{
		Logger:              echoLogger,
		RequestIDHeader:     config.HeaderRequestId,
		RequestIDKey:        config.RequestIdLoggingKey,
		RequestLatencyLevel: zerolog.WarnLevel,
		RequestLatencyLimit: 500 * time.Millisecond,
	}))

	// Add routes
	handler.RegisterPing(e)
	if allRoutes {
		handler.RegisterRoutes(ctx, e, metrics)
	}

	return e
}
