package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Json field names of the transfer spec source blocks, referenced by
// validation messages.
const (
	FieldGcsDataSource   = "gcsDataSource"
	FieldAwsS3DataSource = "awsS3DataSource"
	FieldHttpDataSource  = "httpDataSource"
	FieldAwsAccessKey    = "awsAccessKey"
)

type JobStatus string

const (
	JobStatusEnabled  JobStatus = "ENABLED"
	JobStatusDisabled JobStatus = "DISABLED"
	JobStatusDeleted  JobStatus = "DELETED"
)

// Transfer operation statuses as reported by the transfer API.
const (
	OperationInProgress = "IN_PROGRESS"
	OperationPaused     = "PAUSED"
	OperationSuccess    = "SUCCESS"
	OperationFailed     = "FAILED"
	OperationAborted    = "ABORTED"
)

// NegativeStatuses are the terminal statuses that mean the transfer did not
// complete.
var NegativeStatuses = []string{OperationFailed, OperationAborted}

// TransferJob is the request body for creating a transfer job. Name is
// optional and assigned by the server when absent.
type TransferJob struct {
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	ProjectId    string        `json:"projectId,omitempty"`
	Status       JobStatus     `json:"status,omitempty"`
	Schedule     *Schedule     `json:"schedule,omitempty"`
	TransferSpec *TransferSpec `json:"transferSpec,omitempty"`
}

// IsEmpty reports whether no field of the body has been set.
func (j *TransferJob) IsEmpty() bool {
	return j == nil || *j == TransferJob{}
}

type Schedule struct {
	StartDate      *Date      `json:"scheduleStartDate,omitempty"`
	EndDate        *Date      `json:"scheduleEndDate,omitempty"`
	StartTimeOfDay *TimeOfDay `json:"startTimeOfDay,omitempty"`
}

type TransferSpec struct {
	GcsDataSource    *GcsData          `json:"gcsDataSource,omitempty"`
	AwsS3DataSource  *AwsS3Data        `json:"awsS3DataSource,omitempty"`
	HttpDataSource   *HttpData         `json:"httpDataSource,omitempty"`
	GcsDataSink      *GcsData          `json:"gcsDataSink,omitempty"`
	ObjectConditions *ObjectConditions `json:"objectConditions,omitempty"`
	TransferOptions  *TransferOptions  `json:"transferOptions,omitempty"`
}

// SourceFields returns the json names of the source blocks set on the spec.
func (s *TransferSpec) SourceFields() []string {
	var fields []string
	if s == nil {
		return fields
	}
	if s.GcsDataSource != nil {
		fields = append(fields, FieldGcsDataSource)
	}
	if s.AwsS3DataSource != nil {
		fields = append(fields, FieldAwsS3DataSource)
	}
	if s.HttpDataSource != nil {
		fields = append(fields, FieldHttpDataSource)
	}
	return fields
}

type GcsData struct {
	BucketName string `json:"bucketName"`
	Path       string `json:"path,omitempty"`
}

type AwsS3Data struct {
	BucketName   string        `json:"bucketName"`
	Path         string        `json:"path,omitempty"`
	AwsAccessKey *AwsAccessKey `json:"awsAccessKey,omitempty"`
	RoleArn      string        `json:"roleArn,omitempty"`
}

type AwsAccessKey struct {
	AccessKeyId     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
}

type HttpData struct {
	ListUrl string `json:"listUrl"`
}

type ObjectConditions struct {
	IncludePrefixes                     []string `json:"includePrefixes,omitempty"`
	ExcludePrefixes                     []string `json:"excludePrefixes,omitempty"`
	MinTimeElapsedSinceLastModification string   `json:"minTimeElapsedSinceLastModification,omitempty"`
	MaxTimeElapsedSinceLastModification string   `json:"maxTimeElapsedSinceLastModification,omitempty"`
}

type TransferOptions struct {
	OverwriteObjectsAlreadyExistingInSink bool `json:"overwriteObjectsAlreadyExistingInSink,omitempty"`
	DeleteObjectsUniqueInSink             bool `json:"deleteObjectsUniqueInSink,omitempty"`
	DeleteObjectsFromSourceAfterTransfer  bool `json:"deleteObjectsFromSourceAfterTransfer,omitempty"`
}

// UpdateJobRequest is the request body for patching a transfer job.
type UpdateJobRequest struct {
	ProjectId                  string       `json:"projectId,omitempty"`
	TransferJob                *TransferJob `json:"transferJob"`
	UpdateTransferJobFieldMask string       `json:"updateTransferJobFieldMask,omitempty"`
}

// Operation is a transfer operation resource, the server-side execution of a
// transfer job.
type Operation struct {
	Name     string             `json:"name,omitempty"`
	Done     bool               `json:"done,omitempty"`
	Metadata *OperationMetadata `json:"metadata,omitempty"`
	Error    *OperationError    `json:"error,omitempty"`
}

type OperationMetadata struct {
	Status          string `json:"status,omitempty"`
	TransferJobName string `json:"transferJobName,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// OperationFilter narrows a transfer operation listing.
type OperationFilter struct {
	ProjectId string   `json:"project_id,omitempty"`
	JobNames  []string `json:"job_names,omitempty"`
}

// OperationsContainExpectedStatuses reports whether any operation carries one
// of the expected statuses. It fails when an operation is in a negative
// terminal status while a non-negative status was expected.
func OperationsContainExpectedStatuses(operations []Operation, expected []string) (bool, error) {
	current := map[string]bool{}
	for _, op := range operations {
		if op.Metadata != nil {
			current[op.Metadata.Status] = true
		}
	}
	for _, status := range expected {
		if current[status] {
			return true, nil
		}
	}
	for _, negative := range NegativeStatuses {
		if current[negative] {
			return false, fmt.Errorf(
				"an unexpected operation status was encountered, expected: %v, found: %s", expected, negative)
		}
	}
	return false, nil
}

// CredentialResolver resolves short-lived AWS access keys for injection into
// an S3 data source that lacks role-based auth.
type CredentialResolver interface {
	GetCredentials(ctx context.Context) (AwsAccessKey, error)
}

// Date is a calendar date in the transfer API's split-field form. Its json
// codec also accepts the native "2006-01-02" string form on input, so
// decoding normalizes either representation to the split form.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DateOf splits t into the transfer API's date form.
func DateOf(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", s, err)
		}
		*d = DateOf(t)
		return nil
	}
	type fields Date
	return json.Unmarshal(data, (*fields)(d))
}

// TimeOfDay is a wall clock time in the transfer API's split-field form. As
// with Date, the json codec accepts the native "15:04:05" string form.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TimeOfDayOf splits t into the transfer API's time-of-day form.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute(), Seconds: t.Second()}
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse("15:04:05", s)
		if err != nil {
			return fmt.Errorf("invalid time of day %q: %w", s, err)
		}
		*t = TimeOfDayOf(parsed)
		return nil
	}
	type fields TimeOfDay
	return json.Unmarshal(data, (*fields)(t))
}
