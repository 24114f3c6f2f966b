package operators

import (
	"context"

	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client"
	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

// CreateJobOperator submits a user-supplied transfer job body. The body is
// validated at construction and normalized just before submission.
type CreateJobOperator struct {
	Body *transfer.TransferJob

	client transfer_client.TransferClient
	creds  transfer.CredentialResolver
}

func NewCreateJobOperator(body *transfer.TransferJob, client transfer_client.TransferClient, creds transfer.CredentialResolver) (*CreateJobOperator, error) {
	if err := transfer.ValidateBody(body); err != nil {
		return nil, err
	}
	return &CreateJobOperator{Body: body, client: client, creds: creds}, nil
}

func (o *CreateJobOperator) Execute(ctx context.Context) (*transfer.TransferJob, error) {
	body, err := transfer.Preprocessor{Body: o.Body, DefaultSchedule: true, Credentials: o.creds}.Process(ctx)
	if err != nil {
		return nil, err
	}
	return o.client.CreateTransferJob(ctx, body)
}

// UpdateJobOperator patches the fields named in the request's field mask.
type UpdateJobOperator struct {
	JobName string
	Body    *transfer.UpdateJobRequest

	client transfer_client.TransferClient
}

func NewUpdateJobOperator(jobName string, body *transfer.UpdateJobRequest, client transfer_client.TransferClient) (*UpdateJobOperator, error) {
	if jobName == "" {
		return nil, ce.NewRequiredParamError("job_name")
	}
	if body == nil || body.TransferJob == nil {
		return nil, ce.NewRequiredParamError("body")
	}
	return &UpdateJobOperator{JobName: jobName, Body: body, client: client}, nil
}

func (o *UpdateJobOperator) Execute(ctx context.Context) (*transfer.TransferJob, error) {
	return o.client.UpdateTransferJob(ctx, o.JobName, o.Body)
}

// DeleteJobOperator soft-deletes a transfer job.
type DeleteJobOperator struct {
	JobName   string
	ProjectId string

	client transfer_client.TransferClient
}

func NewDeleteJobOperator(jobName string, projectId string, client transfer_client.TransferClient) (*DeleteJobOperator, error) {
	if jobName == "" {
		return nil, ce.NewRequiredParamError("job_name")
	}
	return &DeleteJobOperator{JobName: jobName, ProjectId: projectId, client: client}, nil
}

func (o *DeleteJobOperator) Execute(ctx context.Context) error {
	return o.client.DeleteTransferJob(ctx, o.JobName, o.ProjectId)
}

// RunJobOperator starts an immediate run of an existing job and returns the
// operation tracking it.
type RunJobOperator struct {
	JobName   string
	ProjectId string

	client transfer_client.TransferClient
}

func NewRunJobOperator(jobName string, projectId string, client transfer_client.TransferClient) *RunJobOperator {
	return &RunJobOperator{JobName: jobName, ProjectId: projectId, client: client}
}

func (o *RunJobOperator) Execute(ctx context.Context) (*transfer.Operation, error) {
	if o.JobName == "" {
		return nil, ce.NewRequiredParamError("job_name")
	}
	return o.client.RunTransferJob(ctx, o.JobName, o.ProjectId)
}
