package handler

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/transferworks/storage-transfer-backend/pkg/clients/aws_client"
	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client"
	"github.com/transferworks/storage-transfer-backend/pkg/instrumentation"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

const ApiVersion = "1.0"

type TransferHandler struct {
	client  transfer_client.TransferClient
	creds   transfer.CredentialResolver
	metrics *instrumentation.Metrics
}

func RegisterRoutes(ctx context.Context, engine *echo.Echo, metrics *instrumentation.Metrics) {
	awsClient, err := aws_client.NewAwsClient(ctx)
	if err != nil {
		// Jobs without an s3 source do not need aws credentials.
		log.Warn().Err(err).Msg("aws credentials unavailable, s3 sources will be rejected")
	}

	th := TransferHandler{
		client:  transfer_client.NewTransferClient(),
		metrics: metrics,
	}
	if awsClient != nil {
		th.creds = awsClient
	}

	th.registerRoutes(engine)
}

func (th *TransferHandler) registerRoutes(engine *echo.Echo) {
	group := engine.Group(rootPath())
	group.POST("/transfer_jobs/", th.createJob)
	group.GET("/transfer_jobs/:name", th.getJob)
	group.PATCH("/transfer_jobs/:name", th.updateJob)
	group.DELETE("/transfer_jobs/:name", th.deleteJob)
	group.POST("/transfer_jobs/:name/run", th.runJob)
	group.GET("/transfer_operations/", th.listOperations)
	group.GET("/transfer_operations/:name", th.getOperation)
	group.POST("/transfer_operations/:name/pause", th.pauseOperation)
	group.POST("/transfer_operations/:name/resume", th.resumeOperation)
	group.POST("/transfer_operations/:name/cancel", th.cancelOperation)
}

func RegisterPing(engine *echo.Echo) {
	engine.GET("/ping", ping)
	engine.GET("/ping/", ping)
}

func ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "pong",
	})
}

func rootPath() string {
	pathPrefix, present := os.LookupEnv("PATH_PREFIX")
	if !present {
		pathPrefix = "api"
	}
	return "/" + pathPrefix + "/storage-transfer/v" + ApiVersion
}
