package transfer_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

type operationList struct {
	Operations    []transfer.Operation `json:"operations"`
	NextPageToken string               `json:"nextPageToken"`
}

func (t *transferClientImpl) GetTransferOperation(ctx context.Context, operationName string) (*transfer.Operation, error) {
	var operation transfer.Operation
	err := t.doRequest(ctx, http.MethodGet, "/"+operationName, nil, &operation)
	if err != nil {
		return nil, fmt.Errorf("error fetching transfer operation: %w", err)
	}
	return &operation, nil
}

// ListTransferOperations lists operations matching the filter, following
// page tokens until the listing is exhausted.
func (t *transferClientImpl) ListTransferOperations(ctx context.Context, filter *transfer.OperationFilter) ([]transfer.Operation, error) {
	filterJson, err := json.Marshal(filter)
	if err != nil {
		return nil, err
	}

	var operations []transfer.Operation
	pageToken := ""
	for {
		path := "/transferOperations?filter=" + url.QueryEscape(string(filterJson))
		if pageToken != "" {
			path += "&pageToken=" + url.QueryEscape(pageToken)
		}
		var page operationList
		if err := t.doRequest(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, fmt.Errorf("error listing transfer operations: %w", err)
		}
		operations = append(operations, page.Operations...)
		if page.NextPageToken == "" {
			return operations, nil
		}
		pageToken = page.NextPageToken
	}
}

func (t *transferClientImpl) PauseTransferOperation(ctx context.Context, operationName string) error {
	err := t.doRequest(ctx, http.MethodPost, "/"+operationName+":pause", nil, nil)
	if err != nil {
		return fmt.Errorf("error pausing transfer operation: %w", err)
	}
	return nil
}

func (t *transferClientImpl) ResumeTransferOperation(ctx context.Context, operationName string) error {
	err := t.doRequest(ctx, http.MethodPost, "/"+operationName+":resume", nil, nil)
	if err != nil {
		return fmt.Errorf("error resuming transfer operation: %w", err)
	}
	return nil
}

func (t *transferClientImpl) CancelTransferOperation(ctx context.Context, operationName string) error {
	err := t.doRequest(ctx, http.MethodPost, "/"+operationName+":cancel", nil, nil)
	if err != nil {
		return fmt.Errorf("error canceling transfer operation: %w", err)
	}
	return nil
}
