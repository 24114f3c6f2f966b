package transfer_client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

// WaitForTransferJob polls the operations of a job until one of them reaches
// an expected status. A negative terminal status fails the wait; a zero
// timeout waits until the context is done.
func (t *transferClientImpl) WaitForTransferJob(ctx context.Context, job *transfer.TransferJob, expectedStatuses []string, timeout time.Duration) error {
	if job == nil || job.Name == "" {
		return fmt.Errorf("transfer job has no name, cannot wait for it")
	}
	if len(expectedStatuses) == 0 {
		expectedStatuses = []string{transfer.OperationSuccess}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := zerolog.Ctx(ctx)
	filter := transfer.OperationFilter{ProjectId: job.ProjectId, JobNames: []string{job.Name}}
	pollCount := 1
	for {
		operations, err := t.ListTransferOperations(ctx, &filter)
		if err != nil {
			return err
		}
		done, err := transfer.OperationsContainExpectedStatuses(operations, expectedStatuses)
		if err != nil {
			return err
		}
		if done {
			logger.Debug().Str("job_name", job.Name).Msg("Transfer job reached expected status")
			return nil
		}
		logger.Debug().Str("job_name", job.Name).Int("operations", len(operations)).Msg("Waiting on transfer job")

		if err := sleepWithBackoff(ctx, pollCount); err != nil {
			return fmt.Errorf("timeout waiting for transfer job %s: %w", job.Name, err)
		}
		pollCount += 1
	}
}

// sleepWithBackoff sleeps in increasing steps, returning early with the
// context's error when it is canceled.
func sleepWithBackoff(ctx context.Context, iteration int) error {
	var secs int
	if iteration <= 5 {
		secs = 1
	} else if iteration > 5 && iteration <= 10 {
		secs = 5
	} else if iteration > 10 && iteration <= 20 {
		secs = 10
	} else {
		secs = 30
	}
	select {
	case <-time.After(time.Duration(secs) * time.Second):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
