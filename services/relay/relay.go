// Package relay forwards booking, order and profile submissions to the
// external form-relay endpoint. Submissions are fire-and-forget: their
// outcome never gates or alters a caller's state transitions.
package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tumy/utils"
)

// Sink accepts a submission record without reporting its outcome.
type Sink interface {
	Submit(record any)
}

// Client posts JSON records to the configured relay endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     utils.GetLogger(),
	}
}

// Submit dispatches the record in the background. Errors are logged, never
// propagated; the caller must not wait on the result.
func (c *Client) Submit(record any) {
	go func() {
		if err := c.send(record); err != nil {
			c.logger.Warn("relay: submission failed", zap.Error(err))
		}
	}()
}

func (c *Client) send(record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("relay: marshal record: %w", err)
	}
	resp, err := c.httpClient.Post(c.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("relay: post record: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay: endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
