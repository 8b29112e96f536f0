package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// timeout for admin API requests
const adminRequestTimeout = 15 * time.Second

// manages HTTP requests to the admin REST API
type AdminClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new admin REST client; the session token comes from the
// environment since the TUI has no browser to run the OAuth flow in
func NewAdminClient() *AdminClient {
	endpoint := os.Getenv("DEVFOLIO_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &AdminClient{
		endpoint: endpoint,
		token:    os.Getenv("DEVFOLIO_ADMIN_TOKEN"),
		httpClient: &http.Client{
			Timeout: adminRequestTimeout,
		},
	}
}

// fetches the counter listing from the admin analytics endpoint
func (c *AdminClient) FetchAnalytics(ctx context.Context) ([]CounterRow, error) {
	var res struct {
		Analytics []CounterRow `json:"analytics"`
	}

	if err := c.get(ctx, "/api/admin/analytics", &res); err != nil {
		return nil, err
	}

	return res.Analytics, nil
}

// fetches the about section from the admin content endpoint
func (c *AdminClient) FetchAbout(ctx context.Context) (*AboutRecord, error) {
	var res struct {
		AboutSection *AboutRecord `json:"aboutSection"`
	}

	if err := c.get(ctx, "/api/admin/about-section", &res); err != nil {
		return nil, err
	}

	return res.AboutSection, nil
}

func (c *AdminClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized: set DEVFOLIO_ADMIN_TOKEN to a valid session token")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}

		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("request failed: %s", errResp.Error)
		}

		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
