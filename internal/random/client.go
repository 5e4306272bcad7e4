// Package random fetches true random numbers from random.org, used to
// decide fight outcomes.
package random

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new"

// Client fetches decimal fractions from random.org (no API key).
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a client. Empty url falls back to the public
// decimal-fractions endpoint; nil httpClient gets a 5s timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = defaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// Fraction returns one random decimal fraction in [0, 1). The endpoint
// responds in text/plain with a single float per line.
func (c *Client) Fraction(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request to random.org failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return 0, fmt.Errorf("random.org non-200: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("read random.org response: %w", err)
	}

	text := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid response from random.org: %q", text)
	}
	return value, nil
}
