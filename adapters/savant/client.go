// Package savant implements the PitchSource adapter for the Baseball Savant
// statcast search endpoint.
package savant

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/XavierBriggs/Argus/pkg/contracts"
)

const (
	// BaseURL is the fixed host the search endpoint lives on
	BaseURL = "https://baseballsavant.mlb.com"

	userAgent      = "Argus/1.0 (Statcast Pitch Pipeline)"
	defaultTimeout = 60 * time.Second
)

// Client fetches statcast search CSVs over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure Client implements PitchSource
var _ contracts.PitchSource = (*Client)(nil)

// NewClient creates a savant client with the default base URL and a 60s
// per-request timeout
func NewClient() *Client {
	return NewClientWithBaseURL(BaseURL)
}

// NewClientWithBaseURL overrides the endpoint host (useful for tests)
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SetTimeout adjusts the per-request timeout
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// FetchCSV executes a single GET and returns the body as UTF-8 text.
// No retries here: a failure fails the whole session by contract.
func (c *Client) FetchCSV(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &httpError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return string(body), nil
}

// httpError represents an HTTP error with status code
type httpError struct {
	StatusCode int
	Message    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
