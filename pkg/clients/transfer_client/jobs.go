package transfer_client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

// CreateTransferJob submits a new transfer job and returns the created
// resource, including the server-assigned name when none was supplied.
func (t *transferClientImpl) CreateTransferJob(ctx context.Context, body *transfer.TransferJob) (*transfer.TransferJob, error) {
	var job transfer.TransferJob
	err := t.doRequest(ctx, http.MethodPost, "/transferJobs", body, &job)
	if err != nil {
		return nil, fmt.Errorf("error creating transfer job: %w", err)
	}
	return &job, nil
}

func (t *transferClientImpl) GetTransferJob(ctx context.Context, jobName string, projectId string) (*transfer.TransferJob, error) {
	var job transfer.TransferJob
	path := "/" + jobName + "?projectId=" + url.QueryEscape(projectId)
	err := t.doRequest(ctx, http.MethodGet, path, nil, &job)
	if err != nil {
		return nil, fmt.Errorf("error fetching transfer job: %w", err)
	}
	return &job, nil
}

// UpdateTransferJob patches a transfer job with the fields named in the
// request's field mask.
func (t *transferClientImpl) UpdateTransferJob(ctx context.Context, jobName string, body *transfer.UpdateJobRequest) (*transfer.TransferJob, error) {
	var job transfer.TransferJob
	err := t.doRequest(ctx, http.MethodPatch, "/"+jobName, body, &job)
	if err != nil {
		return nil, fmt.Errorf("error updating transfer job: %w", err)
	}
	return &job, nil
}

// DeleteTransferJob soft-deletes a job by patching its status to DELETED;
// the transfer API has no hard delete for jobs.
func (t *transferClientImpl) DeleteTransferJob(ctx context.Context, jobName string, projectId string) error {
	body := transfer.UpdateJobRequest{
		ProjectId: projectId,
		TransferJob: &transfer.TransferJob{
			Status: transfer.JobStatusDeleted,
		},
		UpdateTransferJobFieldMask: "status",
	}
	_, err := t.UpdateTransferJob(ctx, jobName, &body)
	return err
}

// RunTransferJob starts an immediate run of the job, returning the operation
// tracking it.
func (t *transferClientImpl) RunTransferJob(ctx context.Context, jobName string, projectId string) (*transfer.Operation, error) {
	var operation transfer.Operation
	payload := map[string]string{"projectId": projectId}
	err := t.doRequest(ctx, http.MethodPost, "/"+jobName+":run", payload, &operation)
	if err != nil {
		return nil, fmt.Errorf("error running transfer job: %w", err)
	}
	return &operation, nil
}
