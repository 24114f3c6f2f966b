package operators

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client"
	"github.com/transferworks/storage-transfer-backend/pkg/config"
	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
	"github.com/transferworks/storage-transfer-backend/pkg/instrumentation"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

// BucketVerifier checks that a source bucket exists before a job is
// submitted. Optional; a nil verifier skips the check.
type BucketVerifier interface {
	VerifyBucket(ctx context.Context, bucketName string) error
}

// S3ToGcsConfig describes a convenience transfer from an s3 bucket into a
// gcs bucket. Wait selects the synchronous mode, Deferrable the deferred
// one; with neither the job is submitted fire-and-forget.
type S3ToGcsConfig struct {
	S3Bucket    string
	S3Path      string
	GcsBucket   string
	GcsPath     string
	ProjectId   string
	Description string

	Schedule         *transfer.Schedule
	ObjectConditions *transfer.ObjectConditions
	TransferOptions  *transfer.TransferOptions

	Wait                     bool
	Timeout                  time.Duration
	DeleteJobAfterCompletion bool
	Deferrable               bool
}

type S3ToGcsOperator struct {
	Conf S3ToGcsConfig

	// Metrics is optional; nil disables recording.
	Metrics *instrumentation.Metrics

	client   transfer_client.TransferClient
	creds    transfer.CredentialResolver
	verifier BucketVerifier
	jobName  string
}

func NewS3ToGcsOperator(conf S3ToGcsConfig, client transfer_client.TransferClient, creds transfer.CredentialResolver, verifier BucketVerifier) (*S3ToGcsOperator, error) {
	if conf.S3Bucket == "" {
		return nil, ce.NewRequiredParamError("s3_bucket")
	}
	if conf.GcsBucket == "" {
		return nil, ce.NewRequiredParamError("gcs_bucket")
	}
	if err := validateDeleteAfterCompletion(conf.DeleteJobAfterCompletion, conf.Wait, conf.Deferrable); err != nil {
		return nil, err
	}
	return &S3ToGcsOperator{Conf: conf, client: client, creds: creds, verifier: verifier}, nil
}

// Execute submits the transfer job. In deferred mode the returned trigger is
// non-nil and the caller hands it to a scheduler; the operator resumes in
// ExecuteComplete. In synchronous mode Execute blocks until the job reaches
// a terminal state.
func (o *S3ToGcsOperator) Execute(ctx context.Context) (*transfer.TransferJob, *JobStatusTrigger, error) {
	if o.verifier != nil && config.Get().Clients.Aws.VerifyBuckets {
		if err := o.verifier.VerifyBucket(ctx, o.Conf.S3Bucket); err != nil {
			return nil, nil, err
		}
	}

	body := &transfer.TransferJob{
		Description: o.Conf.Description,
		ProjectId:   o.Conf.ProjectId,
		Status:      transfer.JobStatusEnabled,
		Schedule:    o.Conf.Schedule,
		TransferSpec: &transfer.TransferSpec{
			AwsS3DataSource:  &transfer.AwsS3Data{BucketName: o.Conf.S3Bucket, Path: o.Conf.S3Path},
			GcsDataSink:      &transfer.GcsData{BucketName: o.Conf.GcsBucket, Path: o.Conf.GcsPath},
			ObjectConditions: o.Conf.ObjectConditions,
			TransferOptions:  o.Conf.TransferOptions,
		},
	}

	job, trigger, err := submitAndWait(ctx, body, o.client, o.creds, o.Metrics, submitConfig{
		wait:       o.Conf.Wait,
		deferrable: o.Conf.Deferrable,
		timeout:    o.Conf.Timeout,
		deleteJob:  o.Conf.DeleteJobAfterCompletion,
	})
	if job != nil {
		o.jobName = job.Name
	}
	return job, trigger, err
}

// ExecuteComplete consumes the completion event of a deferred execution. An
// error status is re-raised as a user-visible failure.
func (o *S3ToGcsOperator) ExecuteComplete(ctx context.Context, event CompletionEvent) error {
	o.Metrics.RecordDeferredCompletion(event.Status)
	return completeDeferred(ctx, event, o.client, o.jobName, o.Conf.ProjectId, o.Conf.DeleteJobAfterCompletion)
}

// GcsToGcsConfig describes a convenience transfer between two gcs buckets.
type GcsToGcsConfig struct {
	SourceBucket      string
	SourcePath        string
	DestinationBucket string
	DestinationPath   string
	ProjectId         string
	Description       string

	Schedule         *transfer.Schedule
	ObjectConditions *transfer.ObjectConditions
	TransferOptions  *transfer.TransferOptions

	Wait                     bool
	Timeout                  time.Duration
	DeleteJobAfterCompletion bool
	Deferrable               bool
}

type GcsToGcsOperator struct {
	Conf GcsToGcsConfig

	// Metrics is optional; nil disables recording.
	Metrics *instrumentation.Metrics

	client  transfer_client.TransferClient
	jobName string
}

func NewGcsToGcsOperator(conf GcsToGcsConfig, client transfer_client.TransferClient) (*GcsToGcsOperator, error) {
	if conf.SourceBucket == "" {
		return nil, ce.NewRequiredParamError("source_bucket")
	}
	if conf.DestinationBucket == "" {
		return nil, ce.NewRequiredParamError("destination_bucket")
	}
	if err := validateDeleteAfterCompletion(conf.DeleteJobAfterCompletion, conf.Wait, conf.Deferrable); err != nil {
		return nil, err
	}
	return &GcsToGcsOperator{Conf: conf, client: client}, nil
}

func (o *GcsToGcsOperator) Execute(ctx context.Context) (*transfer.TransferJob, *JobStatusTrigger, error) {
	body := &transfer.TransferJob{
		Description: o.Conf.Description,
		ProjectId:   o.Conf.ProjectId,
		Status:      transfer.JobStatusEnabled,
		Schedule:    o.Conf.Schedule,
		TransferSpec: &transfer.TransferSpec{
			GcsDataSource:    &transfer.GcsData{BucketName: o.Conf.SourceBucket, Path: o.Conf.SourcePath},
			GcsDataSink:      &transfer.GcsData{BucketName: o.Conf.DestinationBucket, Path: o.Conf.DestinationPath},
			ObjectConditions: o.Conf.ObjectConditions,
			TransferOptions:  o.Conf.TransferOptions,
		},
	}

	job, trigger, err := submitAndWait(ctx, body, o.client, nil, o.Metrics, submitConfig{
		wait:       o.Conf.Wait,
		deferrable: o.Conf.Deferrable,
		timeout:    o.Conf.Timeout,
		deleteJob:  o.Conf.DeleteJobAfterCompletion,
	})
	if job != nil {
		o.jobName = job.Name
	}
	return job, trigger, err
}

func (o *GcsToGcsOperator) ExecuteComplete(ctx context.Context, event CompletionEvent) error {
	o.Metrics.RecordDeferredCompletion(event.Status)
	return completeDeferred(ctx, event, o.client, o.jobName, o.Conf.ProjectId, o.Conf.DeleteJobAfterCompletion)
}

type submitConfig struct {
	wait       bool
	deferrable bool
	timeout    time.Duration
	deleteJob  bool
}

// validateDeleteAfterCompletion enforces that job deletion is only requested
// together with a synchronous or deferred wait. Checked at construction so
// the misconfiguration never reaches execution.
func validateDeleteAfterCompletion(deleteJob bool, wait bool, deferrable bool) error {
	if deleteJob && !wait && !deferrable {
		return &ce.ConfigurationError{
			Message: "If 'delete_job_after_completion' is set, then 'wait' or 'deferrable' must also be set.",
		}
	}
	return nil
}

// submitAndWait normalizes and submits the body, then applies the selected
// execution mode.
func submitAndWait(ctx context.Context, body *transfer.TransferJob, client transfer_client.TransferClient, creds transfer.CredentialResolver, metrics *instrumentation.Metrics, conf submitConfig) (*transfer.TransferJob, *JobStatusTrigger, error) {
	body, err := transfer.Preprocessor{Body: body, DefaultSchedule: true, Credentials: creds}.Process(ctx)
	if err != nil {
		return nil, nil, err
	}

	job, err := client.CreateTransferJob(ctx, body)
	if err != nil {
		return nil, nil, err
	}

	if conf.deferrable {
		trigger := NewJobStatusTrigger(job.Name, job.ProjectId, nil, client)
		return job, trigger, nil
	}

	if conf.wait {
		timeout := conf.timeout
		if timeout == 0 {
			timeout = config.Get().Clients.Transfer.JobTimeout
		}
		start := time.Now()
		if err := client.WaitForTransferJob(ctx, job, nil, timeout); err != nil {
			return job, nil, err
		}
		metrics.RecordJobWait(start)
		if conf.deleteJob {
			if err := client.DeleteTransferJob(ctx, job.Name, job.ProjectId); err != nil {
				return job, nil, err
			}
		}
	}
	return job, nil, nil
}

// completeDeferred resumes an operator after its trigger fires.
func completeDeferred(ctx context.Context, event CompletionEvent, client transfer_client.TransferClient, jobName string, projectId string, deleteJob bool) error {
	if event.Status == StatusError {
		return &ce.DeferredError{Message: event.Message}
	}
	zerolog.Ctx(ctx).Info().Str("job_name", jobName).Msg("Transfer job completed")
	if deleteJob && jobName != "" {
		return client.DeleteTransferJob(ctx, jobName, projectId)
	}
	return nil
}
