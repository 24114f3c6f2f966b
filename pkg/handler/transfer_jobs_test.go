package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/transferworks/storage-transfer-backend/pkg/clients/transfer_client/mocks"
	"github.com/transferworks/storage-transfer-backend/pkg/config"
	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

type TransferJobsSuite struct {
	suite.Suite
	client *mocks.MockTransferClient
	creds  *mocks.MockCredentialResolver
}

func TestTransferJobsSuite(t *testing.T) {
	suite.Run(t, new(TransferJobsSuite))
}

func (s *TransferJobsSuite) SetupTest() {
	s.client = &mocks.MockTransferClient{}
	s.creds = &mocks.MockCredentialResolver{}
}

func (s *TransferJobsSuite) serveRouter(req *http.Request) (int, []byte, error) {
	router := echo.New()
	router.HTTPErrorHandler = config.CustomHTTPErrorHandler
	th := TransferHandler{client: s.client, creds: s.creds}
	th.registerRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	response := rr.Result()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	return response.StatusCode, body, err
}

func jobsPath(suffix string) string {
	return rootPath() + "/transfer_jobs/" + suffix
}

func (s *TransferJobsSuite) TestCreateJob() {
	t := s.T()
	s.client.On("CreateTransferJob", mock.Anything, mock.Anything).
		Return(&transfer.TransferJob{Name: "transferJobs/123", Status: transfer.JobStatusEnabled}, nil)

	body, err := json.Marshal(transfer.TransferJob{
		TransferSpec: &transfer.TransferSpec{
			GcsDataSource: &transfer.GcsData{BucketName: "source"},
			GcsDataSink:   &transfer.GcsData{BucketName: "sink"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, jobsPath(""), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	code, respBody, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)

	var job transfer.TransferJob
	require.NoError(t, json.Unmarshal(respBody, &job))
	assert.Equal(t, "transferJobs/123", job.Name)
	s.client.AssertExpectations(t)
}

func (s *TransferJobsSuite) TestCreateJobEmptyBody() {
	t := s.T()
	req := httptest.NewRequest(http.MethodPost, jobsPath(""), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	code, respBody, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, code)

	var resp ce.ErrorResponse
	require.NoError(t, json.Unmarshal(respBody, &resp))
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Detail, "the required parameter 'body' is empty")
	s.client.AssertNotCalled(t, "CreateTransferJob")
}

func (s *TransferJobsSuite) TestCreateJobMultipleSources() {
	t := s.T()
	body, err := json.Marshal(transfer.TransferJob{
		TransferSpec: &transfer.TransferSpec{
			GcsDataSource:   &transfer.GcsData{BucketName: "source"},
			AwsS3DataSource: &transfer.AwsS3Data{BucketName: "source"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, jobsPath(""), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	code, respBody, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(respBody), "More than one data source detected")
}

func (s *TransferJobsSuite) TestCreateJobNativeDateForms() {
	t := s.T()
	s.client.On("CreateTransferJob", mock.Anything, mock.MatchedBy(func(b *transfer.TransferJob) bool {
		return b.Schedule != nil && *b.Schedule.StartDate == transfer.Date{Day: 15, Month: 10, Year: 2018}
	})).Return(&transfer.TransferJob{Name: "transferJobs/123"}, nil)

	body := []byte(`{
		"transferSpec": {"gcsDataSource": {"bucketName": "source"}},
		"schedule": {"scheduleStartDate": "2018-10-15", "startTimeOfDay": "11:42:43"}
	}`)
	req := httptest.NewRequest(http.MethodPost, jobsPath(""), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	code, _, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	s.client.AssertExpectations(t)
}

func (s *TransferJobsSuite) TestGetJob() {
	t := s.T()
	s.client.On("GetTransferJob", mock.Anything, "transferJobs/123", "test-project").
		Return(&transfer.TransferJob{Name: "transferJobs/123"}, nil)

	req := httptest.NewRequest(http.MethodGet, jobsPath("123")+"?project_id=test-project", nil)
	code, respBody, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	var job transfer.TransferJob
	require.NoError(t, json.Unmarshal(respBody, &job))
	assert.Equal(t, "transferJobs/123", job.Name)
}

func (s *TransferJobsSuite) TestUpdateJob() {
	t := s.T()
	s.client.On("UpdateTransferJob", mock.Anything, "transferJobs/123", mock.MatchedBy(func(b *transfer.UpdateJobRequest) bool {
		return b.UpdateTransferJobFieldMask == "description"
	})).Return(&transfer.TransferJob{Name: "transferJobs/123", Description: "updated"}, nil)

	body := []byte(`{"transferJob": {"description": "updated"}, "updateTransferJobFieldMask": "description"}`)
	req := httptest.NewRequest(http.MethodPatch, jobsPath("123"), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	code, respBody, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	var job transfer.TransferJob
	require.NoError(t, json.Unmarshal(respBody, &job))
	assert.Equal(t, "updated", job.Description)
}

func (s *TransferJobsSuite) TestUpdateJobMissingBody() {
	t := s.T()
	req := httptest.NewRequest(http.MethodPatch, jobsPath("123"), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	code, _, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
}

func (s *TransferJobsSuite) TestDeleteJob() {
	t := s.T()
	s.client.On("DeleteTransferJob", mock.Anything, "transferJobs/123", "test-project").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, jobsPath("123")+"?project_id=test-project", nil)
	code, _, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, code)
	s.client.AssertExpectations(t)
}

func (s *TransferJobsSuite) TestRunJob() {
	t := s.T()
	s.client.On("RunTransferJob", mock.Anything, "transferJobs/123", "").
		Return(&transfer.Operation{Name: "transferOperations/456"}, nil)

	req := httptest.NewRequest(http.MethodPost, jobsPath("123")+"/run", nil)
	code, respBody, err := s.serveRouter(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	var operation transfer.Operation
	require.NoError(t, json.Unmarshal(respBody, &operation))
	assert.Equal(t, "transferOperations/456", operation.Name)
}
