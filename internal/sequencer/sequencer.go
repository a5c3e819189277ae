// Package sequencer delivers user-facing messages to the sequencing
// device's control-plane JSON-RPC endpoint. Delivery failures are
// reported to the caller, who is expected to log and continue; nothing
// here aborts a run.
package sequencer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Severity is the device display level for a user message.
type Severity int

const (
	SeverityInfo    Severity = 1
	SeverityWarning Severity = 2
	SeverityError   Severity = 3
)

// request is the wire form the device control port expects.
type request struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Method   string `json:"method"`
	Params   struct {
		Content string `json:"content"`
	} `json:"params"`
}

// Client posts user messages to a device control port.
type Client struct {
	endpoint   string
	client     *http.Client
	retryDelay time.Duration
}

// NewClient returns a client for the device at host:port.
func NewClient(host string, port int) *Client {
	return &Client{
		endpoint: fmt.Sprintf("http://%s:%d/jsonrpc", host, port),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryDelay: time.Second,
	}
}

// SendUserMessage displays message on the device at the given severity,
// retrying transient failures with backoff.
func (c *Client) SendUserMessage(ctx context.Context, sev Severity, message string) error {
	req := request{
		ID:       "1",
		Severity: fmt.Sprintf("%d", sev),
		Method:   "user_message",
	}
	req.Params.Content = message

	if err := c.postWithRetry(ctx, req); err != nil {
		return fmt.Errorf("send user message: %w", err)
	}
	return nil
}

func (c *Client) postWithRetry(ctx context.Context, req request) error {
	var lastErr error
	retries := 3
	delay := c.retryDelay

	for attempt := 1; attempt <= retries; attempt++ {
		err := c.post(ctx, req)
		if err == nil {
			return nil
		}

		lastErr = err
		if attempt < retries {
			log.Printf("[sequencer] attempt %d/%d failed: %v, retrying in %v", attempt, retries, err, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", retries, lastErr)
}

func (c *Client) post(ctx context.Context, req request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("http %d: %s", resp.StatusCode, string(respBody))
}
