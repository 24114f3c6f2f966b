package transfer

import (
	"context"
	"time"

	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
)

// Preprocessor normalizes a transfer job body before it is forwarded to the
// transfer API: it can inject a default single-day schedule and resolve AWS
// access keys for an S3 source that lacks role-based auth. The body is
// mutated in place; callers must not assume the argument is unmodified.
type Preprocessor struct {
	Body            *TransferJob
	DefaultSchedule bool
	Credentials     CredentialResolver

	// Now is the clock used for the default schedule, overridable in tests.
	Now func() time.Time
}

// Process applies each normalization step and returns the same body. An
// empty body passes through unchanged.
func (p Preprocessor) Process(ctx context.Context) (*TransferJob, error) {
	if p.Body.IsEmpty() {
		return p.Body, nil
	}
	p.injectDefaultSchedule()
	if err := p.injectAwsCredentials(ctx); err != nil {
		return nil, err
	}
	return p.Body, nil
}

// injectDefaultSchedule sets a one-shot schedule of start date = end date =
// today when a default schedule was requested and none is present.
func (p Preprocessor) injectDefaultSchedule() {
	if !p.DefaultSchedule || p.Body.Schedule != nil {
		return
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	today := DateOf(now())
	start, end := today, today
	p.Body.Schedule = &Schedule{StartDate: &start, EndDate: &end}
}

// injectAwsCredentials resolves short-lived access keys into the S3 source
// block. A role-based access arrangement takes precedence: when RoleArn is
// set, no keys are injected.
func (p Preprocessor) injectAwsCredentials(ctx context.Context) error {
	spec := p.Body.TransferSpec
	if spec == nil || spec.AwsS3DataSource == nil || spec.AwsS3DataSource.RoleArn != "" {
		return nil
	}
	if p.Credentials == nil {
		return ce.NewRequiredParamError("credentials")
	}
	key, err := p.Credentials.GetCredentials(ctx)
	if err != nil {
		return err
	}
	spec.AwsS3DataSource.AwsAccessKey = &key
	return nil
}
