// Package api is the typed client for the courtside data service. It
// owns every wire shape: responses are decoded once here, defaulted
// here, and handed to the rest of the dashboard as model types.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/courtside/courtside/src/httputil"
	"github.com/courtside/courtside/src/version"
)

// Client talks to one data service, failing over to fallback URLs
// when the primary is unreachable.
type Client struct {
	baseURL   string
	fallbacks []string
	http      *http.Client
}

// New builds a client. A nil httpClient gets the default transport.
func New(baseURL string, fallbacks []string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient, _ = httputil.NewClient(httputil.Options{})
	}
	return &Client{
		baseURL:   baseURL,
		fallbacks: fallbacks,
		http:      httpClient,
	}
}

// get fetches a path from the primary, then from each fallback. The
// primary's error is the one reported when everything fails.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	body, err := c.getFrom(ctx, c.baseURL, path)
	if err == nil {
		return body, nil
	}

	for _, node := range c.fallbacks {
		if node == c.baseURL || ctx.Err() != nil {
			continue
		}
		if body, nodeErr := c.getFrom(ctx, node, path); nodeErr == nil {
			return body, nil
		}
	}
	return nil, err
}

func (c *Client) getFrom(ctx context.Context, base, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("service error %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// HealthInfo is the service's own view of its backends.
type HealthInfo struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Timestamp string            `json:"timestamp,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Health reports whether the service answers and claims to be ok.
func (c *Client) Health(ctx context.Context) (*HealthInfo, error) {
	body, err := c.get(ctx, "/health")
	if err != nil {
		return nil, fmt.Errorf("api: health: %w", err)
	}
	var info HealthInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("api: health: decode: %w", err)
	}
	return &info, nil
}

