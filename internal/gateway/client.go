package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glowcare/clinic/config"

	"github.com/sirupsen/logrus"
)

// ErrUpstreamUnavailable marks a transport-level failure reaching a
// collaborator service, as opposed to a business rejection the
// collaborator answered with. Proxy paths map it to 502.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// Result is a relayed upstream response: the status code and raw body,
// passed through unchanged on proxy paths.
type Result struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the upstream answered with a 2xx.
func (r *Result) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// client wraps an http.Client with a bounded timeout and a fixed retry
// policy: transport errors are retried up to RetryMax times with
// RetryWait between attempts. HTTP error statuses are never retried;
// they are the collaborator's answer and get relayed as-is.
type client struct {
	baseURL    string
	httpClient *http.Client
	retryMax   int
	retryWait  time.Duration
	log        *logrus.Logger
}

func newClient(baseURL string, cfg config.ClientConfig, log *logrus.Logger) *client {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryMax:   cfg.RetryMax,
		retryWait:  cfg.RetryWait,
		log:        log,
	}
}

func (c *client) do(ctx context.Context, method, path string, body []byte) (*Result, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, ctx.Err())
			case <-time.After(c.retryWait):
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warnf("Upstream call %s %s failed (attempt %d/%d): %v", method, path, attempt+1, c.retryMax+1, err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return &Result{StatusCode: resp.StatusCode, Body: respBody}, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, lastErr)
}
