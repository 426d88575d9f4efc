package rename

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client fetches episode tables from Wikipedia.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client with a sensible request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTPClient creates a client with a custom http.Client
// (for testing).
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// FetchEpisodes downloads the season article and parses its episode table.
func (c *Client) FetchEpisodes(ctx context.Context, url string, single bool) ([]Episode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "scriptshelf (media file renamer)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	episodes, err := ParseEpisodes(resp.Body, single)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	return episodes, nil
}
