package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

type hostKey struct{}

// WithHost records the hostname the dashboard was reached under, which
// selects the backend origin for every call made with the returned context.
func WithHost(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, hostKey{}, host)
}

// HostFromContext returns the hostname stored by WithHost, if any.
func HostFromContext(ctx context.Context) string {
	host, _ := ctx.Value(hostKey{}).(string)
	return host
}

// Client represents a depocheck API client
type Client struct {
	backend    config.BackendConfig
	httpClient *http.Client
}

// NewClient creates a new API client. A zero timeout leaves calls unbounded.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		backend: cfg.Backend,
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
	}
}

// BaseURL returns the API origin for the host carried by ctx.
func (c *Client) BaseURL(ctx context.Context) string {
	return c.backend.ResolveURL(HostFromContext(ctx))
}

// doRequest sends body as JSON and decodes the response into out when out is
// not nil. A 401 maps to entities.ErrUnauthorized, every other failure wraps
// entities.ErrRequestFailed.
func (c *Client) doRequest(
	ctx context.Context,
	method, endpoint, token string,
	body interface{},
	out interface{},
) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %w", entities.ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL(ctx) + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", entities.ErrRequestFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debugf("%s %s", method, url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", entities.ErrRequestFailed, method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", entities.ErrRequestFailed, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s %s", entities.ErrUnauthorized, method, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf(
			"%w: API error (status %d): %s", entities.ErrRequestFailed, resp.StatusCode, string(respBody),
		)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return fmt.Errorf("%w: empty response from %s", entities.ErrRequestFailed, endpoint)
	}
	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to parse response from %s: %w", entities.ErrRequestFailed, endpoint, err)
	}
	return nil
}
