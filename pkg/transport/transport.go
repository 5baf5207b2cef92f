// Package transport performs the single HTTP exchange behind each Slack
// Web API call. The Transport interface is deliberately small so tests
// and instrumentation can substitute the network with a spy or wrapper.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single exchange when the caller does not
// configure one.
const DefaultTimeout = 30 * time.Second

// maxResponseBody caps how much of a response body is read. Web API
// responses are small; the cap guards against a misbehaving endpoint.
const maxResponseBody = 10 << 20

// Transport performs one HTTP exchange. GET encodes the fields as query
// parameters; any other verb sends them as a form-encoded request body.
// It returns the response status code and body bytes; err is non-nil only
// for failures to complete the exchange, not for non-2xx statuses.
type Transport interface {
	Exchange(ctx context.Context, verb, rawURL string, fields url.Values) (status int, body []byte, err error)
}

// HTTPTransport is the default Transport, backed by net/http.
type HTTPTransport struct {
	httpClient *http.Client
}

// New creates an HTTPTransport with the given per-exchange timeout.
// A zero timeout selects DefaultTimeout.
func New(timeout time.Duration) *HTTPTransport {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Exchange implements Transport.
func (t *HTTPTransport) Exchange(ctx context.Context, verb, rawURL string, fields url.Values) (int, []byte, error) {
	var req *http.Request
	var err error

	if verb == http.MethodGet {
		target := rawURL
		if encoded := fields.Encode(); encoded != "" {
			target = rawURL + "?" + encoded
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, verb, rawURL, strings.NewReader(fields.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return 0, nil, fmt.Errorf("building %s request: %w", verb, err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("performing exchange: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

// Close releases idle connections held by the transport.
func (t *HTTPTransport) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}
