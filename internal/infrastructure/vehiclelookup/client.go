// Package vehiclelookup queries an external license-plate table to
// suggest brand, model and year during vehicle registration.
package vehiclelookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"esteticar/internal/domain/catalogs/vehicle"
	"esteticar/pkg/logger"
)

// Config holds client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retries int
}

// DefaultConfig returns conservative defaults. Lookup is advisory, so
// the timeout is short.
func DefaultConfig(baseURL, apiKey string) Config {
	return Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Timeout: 3 * time.Second,
		Retries: 2,
	}
}

// Client implements vehicle.Lookup against a plate-lookup HTTP API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a new lookup client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

var _ vehicle.Lookup = (*Client)(nil)

type lookupResponse struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// LookupByPlate resolves brand/model/year for a plate. Transient failures
// are retried with a short backoff; callers treat any error as advisory.
func (c *Client) LookupByPlate(ctx context.Context, plate string) (string, string, int, error) {
	endpoint := fmt.Sprintf("%s/v1/plates/%s", c.cfg.BaseURL, url.PathEscape(plate))

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", "", 0, ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
			logger.Debug(ctx, "retrying plate lookup", "plate", plate, "attempt", attempt)
		}

		resp, err := c.doRequest(ctx, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		return resp.Brand, resp.Model, resp.Year, nil
	}

	return "", "", 0, fmt.Errorf("plate lookup failed: %w", lastErr)
}

func (c *Client) doRequest(ctx context.Context, endpoint string) (*lookupResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body lookupResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("plate not found")
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
