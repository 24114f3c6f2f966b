package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
	"github.com/transferworks/storage-transfer-backend/pkg/operators"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

// createJob submits a transfer job body. The body may use either the native
// string forms or the split-field forms for schedule dates and times.
func (th *TransferHandler) createJob(c echo.Context) error {
	var body transfer.TransferJob
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error()))
	}

	op, err := operators.NewCreateJobOperator(&body, th.client, th.creds)
	if err != nil {
		return jobError(c, "Error creating transfer job", err)
	}
	job, err := op.Execute(c.Request().Context())
	if err != nil {
		return jobError(c, "Error creating transfer job", err)
	}

	if spec := job.TransferSpec; spec != nil {
		for _, source := range spec.SourceFields() {
			th.metrics.RecordJobSubmitted(source)
		}
	}
	return c.JSON(http.StatusCreated, job)
}

func (th *TransferHandler) getJob(c echo.Context) error {
	name := jobName(c)
	if name == "" {
		return jobError(c, "Error fetching transfer job", ce.NewRequiredParamError("job_name"))
	}
	job, err := th.client.GetTransferJob(c.Request().Context(), name, c.QueryParam("project_id"))
	if err != nil {
		return jobError(c, "Error fetching transfer job", err)
	}
	return c.JSON(http.StatusOK, job)
}

func (th *TransferHandler) updateJob(c echo.Context) error {
	var body transfer.UpdateJobRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error()))
	}

	op, err := operators.NewUpdateJobOperator(jobName(c), &body, th.client)
	if err != nil {
		return jobError(c, "Error updating transfer job", err)
	}
	job, err := op.Execute(c.Request().Context())
	if err != nil {
		return jobError(c, "Error updating transfer job", err)
	}
	return c.JSON(http.StatusOK, job)
}

func (th *TransferHandler) deleteJob(c echo.Context) error {
	op, err := operators.NewDeleteJobOperator(jobName(c), c.QueryParam("project_id"), th.client)
	if err != nil {
		return jobError(c, "Error deleting transfer job", err)
	}
	if err := op.Execute(c.Request().Context()); err != nil {
		return jobError(c, "Error deleting transfer job", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (th *TransferHandler) runJob(c echo.Context) error {
	op := operators.NewRunJobOperator(jobName(c), c.QueryParam("project_id"), th.client)
	operation, err := op.Execute(c.Request().Context())
	if err != nil {
		return jobError(c, "Error running transfer job", err)
	}
	return c.JSON(http.StatusOK, operation)
}

// jobName expands the bare id path segment into the transfer API resource
// name, whose own path contains a slash.
func jobName(c echo.Context) string {
	if id := c.Param("name"); id != "" {
		return "transferJobs/" + id
	}
	return ""
}

func operationName(c echo.Context) string {
	if id := c.Param("name"); id != "" {
		return "transferOperations/" + id
	}
	return ""
}

func jobError(c echo.Context, title string, err error) error {
	code := ce.HttpCodeForError(err)
	return c.JSON(code, ce.NewErrorResponseFromError(title, err))
}
