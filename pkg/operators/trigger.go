package operators

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

const DefaultPollInterval = 10 * time.Second

// JobStatusTrigger is the continuation handed to an external scheduler when
// an operator defers. Run polls the job's operations until one reaches an
// expected status and emits the completion event the operator resumes with.
type JobStatusTrigger struct {
	JobName          string
	ProjectId        string
	ExpectedStatuses []string
	PollInterval     time.Duration

	client transfer_client.TransferClient
}

func NewJobStatusTrigger(jobName string, projectId string, expectedStatuses []string, client transfer_client.TransferClient) *JobStatusTrigger {
	if len(expectedStatuses) == 0 {
		expectedStatuses = []string{transfer.OperationSuccess}
	}
	return &JobStatusTrigger{
		JobName:          jobName,
		ProjectId:        projectId,
		ExpectedStatuses: expectedStatuses,
		PollInterval:     DefaultPollInterval,
		client:           client,
	}
}

// Run polls until completion or context cancellation. It never returns an
// error; failures are carried in the event so the scheduler can hand them
// back to the operator's ExecuteComplete.
func (t *JobStatusTrigger) Run(ctx context.Context) CompletionEvent {
	logger := zerolog.Ctx(ctx)
	filter := transfer.OperationFilter{ProjectId: t.ProjectId, JobNames: []string{t.JobName}}
	for {
		operations, err := t.client.ListTransferOperations(ctx, &filter)
		if err != nil {
			return ErrorEvent(err.Error())
		}
		done, err := transfer.OperationsContainExpectedStatuses(operations, t.ExpectedStatuses)
		if err != nil {
			return ErrorEvent(err.Error())
		}
		if done {
			logger.Debug().Str("job_name", t.JobName).Msg("Transfer job completed")
			return SuccessEvent()
		}

		select {
		case <-time.After(t.PollInterval):
		case <-ctx.Done():
			return ErrorEvent(ctx.Err().Error())
		}
	}
}
