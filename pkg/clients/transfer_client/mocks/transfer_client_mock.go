package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

type MockTransferClient struct {
	mock.Mock
}

func (m *MockTransferClient) CreateTransferJob(ctx context.Context, body *transfer.TransferJob) (*transfer.TransferJob, error) {
	args := m.Called(ctx, body)
	if job, ok := args.Get(0).(*transfer.TransferJob); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransferClient) GetTransferJob(ctx context.Context, jobName string, projectId string) (*transfer.TransferJob, error) {
	args := m.Called(ctx, jobName, projectId)
	if job, ok := args.Get(0).(*transfer.TransferJob); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransferClient) UpdateTransferJob(ctx context.Context, jobName string, body *transfer.UpdateJobRequest) (*transfer.TransferJob, error) {
	args := m.Called(ctx, jobName, body)
	if job, ok := args.Get(0).(*transfer.TransferJob); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransferClient) DeleteTransferJob(ctx context.Context, jobName string, projectId string) error {
	args := m.Called(ctx, jobName, projectId)
	return args.Error(0)
}

func (m *MockTransferClient) RunTransferJob(ctx context.Context, jobName string, projectId string) (*transfer.Operation, error) {
	args := m.Called(ctx, jobName, projectId)
	if operation, ok := args.Get(0).(*transfer.Operation); ok {
		return operation, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransferClient) GetTransferOperation(ctx context.Context, operationName string) (*transfer.Operation, error) {
	args := m.Called(ctx, operationName)
	if operation, ok := args.Get(0).(*transfer.Operation); ok {
		return operation, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransferClient) ListTransferOperations(ctx context.Context, filter *transfer.OperationFilter) ([]transfer.Operation, error) {
	args := m.Called(ctx, filter)
	if operations, ok := args.Get(0).([]transfer.Operation); ok {
		return operations, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransferClient) PauseTransferOperation(ctx context.Context, operationName string) error {
	args := m.Called(ctx, operationName)
	return args.Error(0)
}

func (m *MockTransferClient) ResumeTransferOperation(ctx context.Context, operationName string) error {
	args := m.Called(ctx, operationName)
	return args.Error(0)
}

func (m *MockTransferClient) CancelTransferOperation(ctx context.Context, operationName string) error {
	args := m.Called(ctx, operationName)
	return args.Error(0)
}

func (m *MockTransferClient) WaitForTransferJob(ctx context.Context, job *transfer.TransferJob, expectedStatuses []string, timeout time.Duration) error {
	args := m.Called(ctx, job, expectedStatuses, timeout)
	return args.Error(0)
}

// MockCredentialResolver returns a fixed access key.
type MockCredentialResolver struct {
	mock.Mock
}

func (m *MockCredentialResolver) GetCredentials(ctx context.Context) (transfer.AwsAccessKey, error) {
	args := m.Called(ctx)
	if key, ok := args.Get(0).(transfer.AwsAccessKey); ok {
		return key, args.Error(1)
	}
	return transfer.AwsAccessKey{}, args.Error(1)
}
