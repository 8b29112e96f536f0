package hygraph

import (
	"fmt"
	"net/http"
	"time"
)

// wraps a single GraphQL endpoint with retry and timeout policy
type Client struct {
	endpoint   string
	headers    map[string]string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
	timeout    time.Duration
}

type Option func(*Client)

// sets additional static headers sent on every request
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// overrides the transport-failure retry policy
func WithRetryPolicy(retries int, delay time.Duration) Option {
	return func(c *Client) {
		if retries > 0 {
			c.retries = retries
		}

		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// overrides the per-attempt timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// substitutes the HTTP client, used by tests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// application-level failure: the CMS returned a well-formed error payload.
// never retried - validation failures and permission errors do not heal
type GraphQLError struct {
	Message    string
	StatusCode int
}

func (e *GraphQLError) Error() string {
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}
