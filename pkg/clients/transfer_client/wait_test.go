package transfer_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

func TestWaitForTransferJobNoName(t *testing.T) {
	tc := transferClientImpl{client: http.Client{}}
	err := tc.WaitForTransferJob(context.Background(), nil, nil, 0)
	assert.ErrorContains(t, err, "has no name")

	err = tc.WaitForTransferJob(context.Background(), &transfer.TransferJob{}, nil, 0)
	assert.ErrorContains(t, err, "has no name")
}

func TestWaitForTransferJobSuccess(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"operations": [{"name": "transferOperations/456", "metadata": {"status": "SUCCESS"}}]}`))
	}))
	defer httpServer.Close()
	pointServerAt(httpServer.URL)

	tc := transferClientImpl{client: http.Client{}}
	job := &transfer.TransferJob{Name: "transferJobs/123", ProjectId: "test-project"}
	err := tc.WaitForTransferJob(context.Background(), job, nil, time.Minute)
	assert.NoError(t, err)
}

func TestWaitForTransferJobFailure(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"operations": [{"name": "transferOperations/456", "metadata": {"status": "FAILED"}}]}`))
	}))
	defer httpServer.Close()
	pointServerAt(httpServer.URL)

	tc := transferClientImpl{client: http.Client{}}
	job := &transfer.TransferJob{Name: "transferJobs/123", ProjectId: "test-project"}
	err := tc.WaitForTransferJob(context.Background(), job, nil, time.Minute)
	require.Error(t, err)
	assert.ErrorContains(t, err, "FAILED")
}

func TestWaitForTransferJobTimeout(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"operations": [{"name": "transferOperations/456", "metadata": {"status": "IN_PROGRESS"}}]}`))
	}))
	defer httpServer.Close()
	pointServerAt(httpServer.URL)

	tc := transferClientImpl{client: http.Client{}}
	job := &transfer.TransferJob{Name: "transferJobs/123", ProjectId: "test-project"}
	err := tc.WaitForTransferJob(context.Background(), job, nil, 50*time.Millisecond)
	require.Error(t, err)
	assert.ErrorContains(t, err, "timeout waiting for transfer job transferJobs/123")
}

func TestWaitForTransferJobExpectedPaused(t *testing.T) {
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"operations": [{"name": "transferOperations/456", "metadata": {"status": "PAUSED"}}]}`))
	}))
	defer httpServer.Close()
	pointServerAt(httpServer.URL)

	tc := transferClientImpl{client: http.Client{}}
	job := &transfer.TransferJob{Name: "transferJobs/123", ProjectId: "test-project"}
	err := tc.WaitForTransferJob(context.Background(), job, []string{transfer.OperationPaused}, time.Minute)
	assert.NoError(t, err)
}
