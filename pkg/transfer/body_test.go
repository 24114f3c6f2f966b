package transfer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromString(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2018-10-15"`), &d))
	assert.Equal(t, Date{Day: 15, Month: 10, Year: 2018}, d)
}

func TestDateFromObject(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`{"day": 15, "month": 10, "year": 2018}`), &d))
	assert.Equal(t, Date{Day: 15, Month: 10, Year: 2018}, d)
}

func TestDateInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"15/10/2018"`), &d)
	assert.ErrorContains(t, err, "invalid date")
}

func TestDateMarshalsSplitForm(t *testing.T) {
	out, err := json.Marshal(Date{Day: 15, Month: 10, Year: 2018})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day": 15, "month": 10, "year": 2018}`, string(out))
}

func TestTimeOfDayFromString(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"11:42:43"`), &tod))
	assert.Equal(t, TimeOfDay{Hours: 11, Minutes: 42, Seconds: 43}, tod)
}

func TestTimeOfDayFromObject(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`{"hours": 11, "minutes": 42, "seconds": 43}`), &tod))
	assert.Equal(t, TimeOfDay{Hours: 11, Minutes: 42, Seconds: 43}, tod)
}

func TestTimeOfDayInvalid(t *testing.T) {
	var tod TimeOfDay
	err := json.Unmarshal([]byte(`"11h42"`), &tod)
	assert.ErrorContains(t, err, "invalid time of day")
}

func TestScheduleRoundTrip(t *testing.T) {
	in := []byte(`{"scheduleStartDate": "2018-10-15", "scheduleEndDate": {"day": 16, "month": 10, "year": 2018}, "startTimeOfDay": "11:42:43"}`)
	var s Schedule
	require.NoError(t, json.Unmarshal(in, &s))
	assert.Equal(t, &Date{Day: 15, Month: 10, Year: 2018}, s.StartDate)
	assert.Equal(t, &Date{Day: 16, Month: 10, Year: 2018}, s.EndDate)
	assert.Equal(t, &TimeOfDay{Hours: 11, Minutes: 42, Seconds: 43}, s.StartTimeOfDay)

	out, err := json.Marshal(&s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"scheduleStartDate": {"day": 15, "month": 10, "year": 2018},
		"scheduleEndDate": {"day": 16, "month": 10, "year": 2018},
		"startTimeOfDay": {"hours": 11, "minutes": 42, "seconds": 43}
	}`, string(out))
}

func TestTransferJobIsEmpty(t *testing.T) {
	var nilJob *TransferJob
	assert.True(t, nilJob.IsEmpty())
	assert.True(t, (&TransferJob{}).IsEmpty())
	assert.False(t, (&TransferJob{Name: "transferJobs/123"}).IsEmpty())
}

func TestSourceFields(t *testing.T) {
	var nilSpec *TransferSpec
	assert.Empty(t, nilSpec.SourceFields())
	assert.Empty(t, (&TransferSpec{GcsDataSink: &GcsData{BucketName: "sink"}}).SourceFields())
	assert.Equal(t, []string{"gcsDataSource"},
		(&TransferSpec{GcsDataSource: &GcsData{BucketName: "source"}}).SourceFields())
	assert.Equal(t, []string{"gcsDataSource", "awsS3DataSource", "httpDataSource"},
		(&TransferSpec{
			GcsDataSource:   &GcsData{BucketName: "source"},
			AwsS3DataSource: &AwsS3Data{BucketName: "source"},
			HttpDataSource:  &HttpData{ListUrl: "http://example.com/list.tsv"},
		}).SourceFields())
}

func TestOperationsContainExpectedStatuses(t *testing.T) {
	inProgress := Operation{Metadata: &OperationMetadata{Status: OperationInProgress}}
	success := Operation{Metadata: &OperationMetadata{Status: OperationSuccess}}
	failed := Operation{Metadata: &OperationMetadata{Status: OperationFailed}}

	found, err := OperationsContainExpectedStatuses([]Operation{success}, []string{OperationSuccess})
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = OperationsContainExpectedStatuses([]Operation{inProgress}, []string{OperationSuccess})
	assert.NoError(t, err)
	assert.False(t, found)

	found, err = OperationsContainExpectedStatuses([]Operation{failed}, []string{OperationSuccess})
	assert.Error(t, err)
	assert.False(t, found)

	// An expected negative status is not an error.
	found, err = OperationsContainExpectedStatuses([]Operation{failed}, []string{OperationFailed})
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = OperationsContainExpectedStatuses([]Operation{}, []string{OperationSuccess})
	assert.NoError(t, err)
	assert.False(t, found)
}
