// Package relay is the HTTP client the gateway uses to forward
// validated requests to the API server.
package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client forwards requests to the API server tier.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a relay client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the server base URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// ForwardInput describes one request to relay.
type ForwardInput struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	// SharerID is copied into the X-Sharer-User-Id header when positive.
	SharerID int64
	// RequestID is copied into the X-Request-Id header when set.
	RequestID string
}

// Result is the server's verbatim reply.
type Result struct {
	Status int
	Body   []byte
}

// Forward sends the request to the server and returns its status and
// body unchanged. Only transport failures produce an error.
func (c *Client) Forward(ctx context.Context, in ForwardInput) (Result, error) {
	u := c.baseURL + in.Path
	if len(in.Query) > 0 {
		u += "?" + in.Query.Encode()
	}

	var body io.Reader
	if len(in.Body) > 0 {
		body = bytes.NewReader(in.Body)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, u, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build relay request: %w", err)
	}
	if len(in.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.SharerID > 0 {
		req.Header.Set("X-Sharer-User-Id", strconv.FormatInt(in.SharerID, 10))
	}
	if in.RequestID != "" {
		req.Header.Set("X-Request-Id", in.RequestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read server response: %w", err)
	}

	return Result{Status: resp.StatusCode, Body: raw}, nil
}
