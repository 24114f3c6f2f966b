package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/transferworks/storage-transfer-backend/pkg/operators"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

func (th *TransferHandler) getOperation(c echo.Context) error {
	op, err := operators.NewGetOperationOperator(operationName(c), th.client)
	if err != nil {
		return jobError(c, "Error fetching transfer operation", err)
	}
	operation, err := op.Execute(c.Request().Context())
	if err != nil {
		return jobError(c, "Error fetching transfer operation", err)
	}
	return c.JSON(http.StatusOK, operation)
}

func (th *TransferHandler) listOperations(c echo.Context) error {
	filter := transfer.OperationFilter{
		ProjectId: c.QueryParam("project_id"),
	}
	if names := c.QueryParam("job_names"); names != "" {
		filter.JobNames = strings.Split(names, ",")
	}

	op, err := operators.NewListOperationsOperator(&filter, th.client)
	if err != nil {
		return jobError(c, "Error listing transfer operations", err)
	}
	operations, err := op.Execute(c.Request().Context())
	if err != nil {
		return jobError(c, "Error listing transfer operations", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"operations": operations})
}

func (th *TransferHandler) pauseOperation(c echo.Context) error {
	op, err := operators.NewPauseOperationOperator(operationName(c), th.client)
	if err != nil {
		return jobError(c, "Error pausing transfer operation", err)
	}
	if err := op.Execute(c.Request().Context()); err != nil {
		return jobError(c, "Error pausing transfer operation", err)
	}
	th.metrics.RecordOperationAction("pause")
	return c.NoContent(http.StatusNoContent)
}

func (th *TransferHandler) resumeOperation(c echo.Context) error {
	op, err := operators.NewResumeOperationOperator(operationName(c), th.client)
	if err != nil {
		return jobError(c, "Error resuming transfer operation", err)
	}
	if err := op.Execute(c.Request().Context()); err != nil {
		return jobError(c, "Error resuming transfer operation", err)
	}
	th.metrics.RecordOperationAction("resume")
	return c.NoContent(http.StatusNoContent)
}

func (th *TransferHandler) cancelOperation(c echo.Context) error {
	op, err := operators.NewCancelOperationOperator(operationName(c), th.client)
	if err != nil {
		return jobError(c, "Error canceling transfer operation", err)
	}
	if err := op.Execute(c.Request().Context()); err != nil {
		return jobError(c, "Error canceling transfer operation", err)
	}
	th.metrics.RecordOperationAction("cancel")
	return c.NoContent(http.StatusNoContent)
}
