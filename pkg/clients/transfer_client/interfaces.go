package transfer_client

import (
	"context"
	"net/http"
	"time"

	"github.com/transferworks/storage-transfer-backend/pkg/config"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

type TransferClient interface {
	// Jobs
	CreateTransferJob(ctx context.Context, body *transfer.TransferJob) (*transfer.TransferJob, error)
	GetTransferJob(ctx context.Context, jobName string, projectId string) (*transfer.TransferJob, error)
	UpdateTransferJob(ctx context.Context, jobName string, body *transfer.UpdateJobRequest) (*transfer.TransferJob, error)
	DeleteTransferJob(ctx context.Context, jobName string, projectId string) error
	RunTransferJob(ctx context.Context, jobName string, projectId string) (*transfer.Operation, error)

	// Operations
	GetTransferOperation(ctx context.Context, operationName string) (*transfer.Operation, error)
	ListTransferOperations(ctx context.Context, filter *transfer.OperationFilter) ([]transfer.Operation, error)
	PauseTransferOperation(ctx context.Context, operationName string) error
	ResumeTransferOperation(ctx context.Context, operationName string) error
	CancelTransferOperation(ctx context.Context, operationName string) error

	// WaitForTransferJob polls the job's operations until one reaches the
	// expected status, a negative terminal status, or the timeout.
	WaitForTransferJob(ctx context.Context, job *transfer.TransferJob, expectedStatuses []string, timeout time.Duration) error
}

type transferClientImpl struct {
	client http.Client
}

func NewTransferClient() TransferClient {
	return &transferClientImpl{
		client: http.Client{Timeout: config.Get().Clients.Transfer.Timeout},
	}
}
