package hygraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/devfolio/server/internal/logger"
	"codeberg.org/devfolio/server/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	defaultRetries    = 3
	defaultRetryDelay = 1 * time.Second
	defaultTimeout    = 30 * time.Second
)

var (
	ErrNotConfigured = errors.New("hygraph endpoint is not configured")
)

// shared HTTP client for CMS calls; per-attempt deadlines come from context
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for outbound CMS calls (50 requests/second with burst capacity of 10)
var hygraphRateLimiter = rate.NewLimiter(50, 10)

// creates a client without credentials, for public content reads
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		headers:    map[string]string{},
		httpClient: sharedHTTPClient,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
		timeout:    defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// creates a client holding the privileged CMS token, for mutations and
// draft-stage reads
func NewAdmin(endpoint, token string, opts ...Option) *Client {
	headers := map[string]string{}

	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return New(endpoint, append([]Option{WithHeaders(headers)}, opts...)...)
}

// executes one logical GraphQL operation and decodes the data payload into
// out. Transport failures are retried with a backoff that scales with the
// attempt number; GraphQL error payloads propagate immediately.
func (c *Client) Request(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.endpoint == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error

	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			metrics.HygraphRetries.Inc()

			delay := c.retryDelay * time.Duration(attempt-1)
			logger.Warn("hygraph request failed, retrying",
				"attempt", attempt-1,
				"delay", delay.String(),
				"error", lastErr,
			)

			select {
			case <-ctx.Done():
				metrics.HygraphRequests.WithLabelValues("transport_error").Inc()
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.do(ctx, body, out)
		if err == nil {
			metrics.HygraphRequests.WithLabelValues("success").Inc()
			return nil
		}

		// application-level errors (validation, permissions, not found)
		// do not retry
		var gqlErr *GraphQLError
		if errors.As(err, &gqlErr) {
			metrics.HygraphRequests.WithLabelValues("graphql_error").Inc()
			return err
		}

		lastErr = err
	}

	metrics.HygraphRequests.WithLabelValues("transport_error").Inc()

	return fmt.Errorf("hygraph request failed after %d attempts: %w", c.retries, lastErr)
}

// performs a single attempt under the per-attempt timeout
func (c *Client) do(ctx context.Context, body []byte, out any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := hygraphRateLimiter.Wait(attemptCtx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var parsed struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}

	// a malformed body on a non-2xx status still classifies as an
	// application error - the CMS answered, it just said no
	decodeErr := json.Unmarshal(respBody, &parsed)

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("hygraph request failed (%d)", resp.StatusCode)
		if decodeErr == nil && len(parsed.Errors) > 0 && parsed.Errors[0].Message != "" {
			msg = parsed.Errors[0].Message
		}

		return &GraphQLError{Message: msg, StatusCode: resp.StatusCode}
	}

	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if len(parsed.Errors) > 0 {
		msg := parsed.Errors[0].Message
		if msg == "" {
			msg = "hygraph request failed"
		}

		return &GraphQLError{Message: msg, StatusCode: resp.StatusCode}
	}

	if out != nil && parsed.Data != nil {
		if err := json.Unmarshal(parsed.Data, out); err != nil {
			return fmt.Errorf("failed to decode data payload: %w", err)
		}
	}

	return nil
}
