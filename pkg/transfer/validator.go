package transfer

import (
	"fmt"

	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
)

// ValidateBody checks a transfer job body before it is sent anywhere. Checks
// run in order and the first failure wins: empty body, raw credentials
// embedded in the body, more than one data source.
func ValidateBody(body *TransferJob) error {
	if body.IsEmpty() {
		return ce.NewRequiredParamError("body")
	}
	if err := validateAwsCredentials(body.TransferSpec); err != nil {
		return err
	}
	return validateDataSource(body.TransferSpec)
}

func validateAwsCredentials(spec *TransferSpec) error {
	if spec == nil || spec.AwsS3DataSource == nil {
		return nil
	}
	if spec.AwsS3DataSource.AwsAccessKey != nil {
		return &ce.ValidationError{Message: fmt.Sprintf(
			"AWS credentials detected inside the body parameter (%s). This is not allowed, "+
				"configure a credential resolver to supply credentials instead.", FieldAwsAccessKey)}
	}
	return nil
}

func validateDataSource(spec *TransferSpec) error {
	if len(spec.SourceFields()) > 1 {
		return &ce.ValidationError{Message: fmt.Sprintf(
			"More than one data source detected. Please choose exactly one data source from: %s, %s and %s.",
			FieldGcsDataSource, FieldAwsS3DataSource, FieldHttpDataSource)}
	}
	return nil
}
