package transfer_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/transferworks/storage-transfer-backend/pkg/config"
)

// doRequest sends a json request to the transfer API and decodes the
// response into out when out is non-nil. Errors from the API are propagated
// with the response body attached and are never retried here.
func (t *transferClientImpl) doRequest(ctx context.Context, method string, path string, payload any, out any) error {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	server := config.Get().Clients.Transfer.Server
	req, err := http.NewRequestWithContext(ctx, method, server+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := config.Get().Clients.Transfer.Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var body []byte
	statusCode := http.StatusInternalServerError
	resp, err := t.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("error during read response body: %w", err)
		}
		if resp.StatusCode != 0 {
			statusCode = resp.StatusCode
		}
	}
	if err != nil {
		return fmt.Errorf("error during %s request: %w", method, err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return fmt.Errorf("unexpected status code %d with body: %s", statusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("error during unmarshal response body: %w", err)
		}
	}
	return nil
}
