// Package statsapi implements the MLB StatsAPI schedule and game lookups
// used to translate a team/date window into game pks.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// BaseURL is the fixed StatsAPI host
	BaseURL = "https://statsapi.mlb.com"

	schedulePathFmt = "%s/api/v1/schedule?%s"
	gamePathFmt     = "%s/api/v1.1/game/%d/feed/live"

	userAgent = "Argus/1.0 (Statcast Pitch Pipeline)"
)

// Client wraps MLB StatsAPI access
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client with a default HTTP client and timeout
func NewClient() *Client {
	return NewClientWithBaseURL(BaseURL)
}

// NewClientWithBaseURL overrides the API host (useful for tests)
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Schedule retrieves the games scheduled between startDate and endDate
// (inclusive, YYYY-MM-DD), optionally narrowed to one team ID (0 = all
// teams). Games are flattened across dates in schedule order.
func (c *Client) Schedule(ctx context.Context, startDate, endDate string, teamID int) ([]ScheduleGame, error) {
	queryVals := url.Values{}
	queryVals.Set("sportId", "1")
	queryVals.Set("startDate", startDate)
	queryVals.Set("endDate", endDate)
	if teamID > 0 {
		queryVals.Set("teamId", strconv.Itoa(teamID))
	}

	endpoint := fmt.Sprintf(schedulePathFmt, c.baseURL, queryVals.Encode())

	var resp scheduleResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("schedule request failed: %w", err)
	}

	var games []ScheduleGame
	for _, d := range resp.Dates {
		games = append(games, d.Games...)
	}
	return games, nil
}

// GameFeed returns the live-feed summary for a specific game
func (c *Client) GameFeed(ctx context.Context, gamePK int) (*GameFeed, error) {
	endpoint := fmt.Sprintf(gamePathFmt, c.baseURL, gamePK)
	var feed GameFeed
	if err := c.get(ctx, endpoint, &feed); err != nil {
		return nil, fmt.Errorf("game feed request failed: %w", err)
	}
	return &feed, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
