// Package formpost is the blocking HTTP transport used by gateway adapters
// that speak form-encoded dialects: one POST per call, no redirect
// following, raw response bytes back.
package formpost

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const contentType = "application/x-www-form-urlencoded; charset=utf-8"

// Config is a configuration for the form POST client.
type Config struct {
	// Timeout bounds the whole round trip: connect, write, read.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Client performs blocking form-encoded POSTs. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			// Gateways answer on the posted URL; a redirect is a fault.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Post sends body as a form-encoded POST to url and returns the raw response
// bytes. Any failure — connect, write, read, redirect, non-2xx status — is
// returned as a single opaque error; callers are expected to treat all
// transport faults uniformly.
func (c *Client) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return raw, nil
}
