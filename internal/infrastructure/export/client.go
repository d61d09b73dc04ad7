// Package export implements the HTTP client for the two static JSON
// documents produced by the export pipeline.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/99minutos/returns-dashboard/internal/core/ports"
)

const defaultFetchTimeout = 30 * time.Second

// Client fetches the payload and metadata documents from fixed URLs.
type Client struct {
	payloadURL  string
	metadataURL string
	httpc       *http.Client
}

// NewClient creates a Client. metadataURL may be empty, meaning the export
// pipeline publishes no companion metadata document. A default timeout is
// applied when none is provided; there is no retry policy.
func NewClient(payloadURL, metadataURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Client{
		payloadURL:  payloadURL,
		metadataURL: metadataURL,
		httpc:       &http.Client{Timeout: timeout},
	}
}

// FetchPayload retrieves the primary export document. A missing items
// array decodes to an empty record list.
func (c *Client) FetchPayload(ctx context.Context) (*ports.Payload, error) {
	var p ports.Payload
	if err := c.getJSON(ctx, c.payloadURL, &p); err != nil {
		return nil, fmt.Errorf("fetch payload: %w", err)
	}
	return &p, nil
}

// FetchMetadata retrieves the companion metadata document, or (nil, nil)
// when no metadata URL is configured.
func (c *Client) FetchMetadata(ctx context.Context) (*ports.Metadata, error) {
	if c.metadataURL == "" {
		return nil, nil
	}
	var m ports.Metadata
	if err := c.getJSON(ctx, c.metadataURL, &m); err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	return &m, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("http %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
