package operators

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client/mocks"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

func operationWithStatus(status string) []transfer.Operation {
	return []transfer.Operation{{
		Name:     "transferOperations/456",
		Metadata: &transfer.OperationMetadata{Status: status, TransferJobName: "transferJobs/123"},
	}}
}

func TestTriggerSuccess(t *testing.T) {
	ctx := context.Background()
	client := mocks.MockTransferClient{}
	filter := &transfer.OperationFilter{ProjectId: "test-project", JobNames: []string{"transferJobs/123"}}
	client.On("ListTransferOperations", ctx, filter).
		Return(operationWithStatus(transfer.OperationInProgress), nil).Once()
	client.On("ListTransferOperations", ctx, filter).
		Return(operationWithStatus(transfer.OperationSuccess), nil).Once()

	trigger := NewJobStatusTrigger("transferJobs/123", "test-project", nil, &client)
	trigger.PollInterval = time.Millisecond

	event := trigger.Run(ctx)
	assert.Equal(t, SuccessEvent(), event)
	client.AssertExpectations(t)
}

func TestTriggerFailedOperation(t *testing.T) {
	ctx := context.Background()
	client := mocks.MockTransferClient{}
	client.On("ListTransferOperations", ctx, mock.Anything).
		Return(operationWithStatus(transfer.OperationFailed), nil)

	trigger := NewJobStatusTrigger("transferJobs/123", "test-project", nil, &client)
	trigger.PollInterval = time.Millisecond

	event := trigger.Run(ctx)
	assert.Equal(t, StatusError, event.Status)
	assert.Contains(t, event.Message, "FAILED")
}

func TestTriggerListError(t *testing.T) {
	ctx := context.Background()
	client := mocks.MockTransferClient{}
	client.On("ListTransferOperations", ctx, mock.Anything).
		Return(nil, fmt.Errorf("error listing transfer operations: 503"))

	trigger := NewJobStatusTrigger("transferJobs/123", "test-project", nil, &client)
	trigger.PollInterval = time.Millisecond

	event := trigger.Run(ctx)
	assert.Equal(t, StatusError, event.Status)
	assert.Contains(t, event.Message, "503")
}

func TestTriggerContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := mocks.MockTransferClient{}
	client.On("ListTransferOperations", ctx, mock.Anything).
		Return(operationWithStatus(transfer.OperationInProgress), nil)

	trigger := NewJobStatusTrigger("transferJobs/123", "test-project", nil, &client)
	trigger.PollInterval = time.Minute

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	event := trigger.Run(ctx)
	assert.Equal(t, StatusError, event.Status)
	assert.Contains(t, event.Message, "context canceled")
}

func TestTriggerDefaultExpectedStatuses(t *testing.T) {
	client := mocks.MockTransferClient{}
	trigger := NewJobStatusTrigger("transferJobs/123", "test-project", nil, &client)
	assert.Equal(t, []string{transfer.OperationSuccess}, trigger.ExpectedStatuses)
	assert.Equal(t, DefaultPollInterval, trigger.PollInterval)

	trigger = NewJobStatusTrigger("transferJobs/123", "test-project", []string{transfer.OperationPaused}, &client)
	assert.Equal(t, []string{transfer.OperationPaused}, trigger.ExpectedStatuses)
}
