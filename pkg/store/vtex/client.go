// Package vtex implements the HTTP clients for the external VTEX services
// the comparator depends on: checkout (carts), master data (budgets) and
// catalog (SKU weights). The comparison core never reaches these directly;
// it sees only the fetched documents.
package vtex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amaranz/budget-atlas/pkg/services/config"
)

const defaultTimeout = 15 * time.Second

// Client is the shared HTTP plumbing for the VTEX API clients.
type Client struct {
	cfg        config.VTEX
	httpClient *http.Client
}

func NewClient(cfg config.VTEX) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// getJSON issues an authenticated GET and decodes the JSON response into
// out. A non-2xx status is returned as (status, error) so callers can map
// 404s onto their own not-found types.
func (c *Client) getJSON(ctx context.Context, path string, out any) (int, error) {
	url := c.cfg.BaseURL() + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-VTEX-API-AppKey", c.cfg.AppKey)
	req.Header.Set("X-VTEX-API-AppToken", c.cfg.AppToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return resp.StatusCode, nil
}
