// Package escolar implements the HTTP client for the school-management
// service. It owns the base URL, the fixed request timeout, the JSON
// headers, and the unwrapping of the uniform response envelope; failures
// surface as TransportError or ResponseError for classification upstream.
package escolar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is the fixed request timeout of the gateway. It is not
// overridable at call time.
const DefaultTimeout = 10 * time.Second

// ClientConfig contains configuration for the school service client.
// Configuration is static per process; there is no per-call override.
type ClientConfig struct {
	// BaseURL is the service base URL, without a trailing slash.
	BaseURL string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Logger for structured diagnostics.
	Logger *slog.Logger

	// Metrics is the optional observability sink.
	Metrics *Metrics

	// Debug enables per-request debug logging.
	Debug bool
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL: baseURL,
		Timeout: DefaultTimeout,
	}
}

// Client is the school service API client.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new school service client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger,
	}
}

// Get issues a GET and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the envelope's data.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH with a JSON body and decodes the envelope's data.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE. The envelope's data, if any, is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// DeleteJSON issues a DELETE and decodes the envelope's data into out,
// for sub-resource removals that answer with the updated parent.
func (c *Client) DeleteJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do performs a single HTTP request against the service. On success the
// envelope is unwrapped and its data decoded into out (when non-nil).
// No response at all yields a *TransportError; an error status yields a
// *ResponseError carrying the server body. There are no retries at this
// layer: a failed call is re-invoked by the caller.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	fullURL := c.config.BaseURL + path
	requestID := uuid.NewString()
	start := time.Now()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if c.config.Debug {
		c.logger.Debug("escolar api request", "method", method, "path", path, "request_id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		terr := newTransportError(err)
		c.record(method, path, requestID, transportStatus(terr), start, terr)
		return terr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := newTransportError(err)
		c.record(method, path, requestID, transportStatus(terr), start, terr)
		return terr
	}

	if resp.StatusCode >= 400 {
		rerr := newResponseError(resp.StatusCode, respBody)
		c.record(method, path, requestID, strconv.Itoa(resp.StatusCode), start, rerr)
		return rerr
	}

	c.record(method, path, requestID, strconv.Itoa(resp.StatusCode), start, nil)

	if out == nil || len(respBody) == 0 {
		return nil
	}

	var envelope Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	// Some endpoints answer bare JSON without the wrapper; fall back to
	// the raw body so callers still get their data.
	payload := []byte(envelope.Data)
	if len(payload) == 0 {
		payload = respBody
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

// record emits the structured diagnostic for one finished request. It is
// best-effort and never changes the outcome seen by the caller.
func (c *Client) record(method, path, requestID, status string, start time.Time, reqErr error) {
	elapsed := time.Since(start)
	c.config.Metrics.observe(method, status, elapsed.Seconds())

	if reqErr != nil {
		c.logger.Warn("escolar api request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", status,
			"duration", elapsed.String(),
			"error", reqErr.Error(),
		)
		return
	}
	if c.config.Debug {
		c.logger.Debug("escolar api response",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", status,
			"duration", elapsed.String(),
		)
	}
}

func transportStatus(err *TransportError) string {
	if err.Timeout {
		return "timeout"
	}
	return "network"
}

// IsHealthy checks whether the service is reachable. A cheap read is
// used because the service exposes no dedicated health endpoint.
func (c *Client) IsHealthy(ctx context.Context) bool {
	var count CountDTO
	return c.Get(ctx, StudentEndpoints.Count, &count) == nil
}
