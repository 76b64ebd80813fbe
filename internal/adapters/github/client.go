// Package github provides a resilient GitHub REST v3 client for chronicle
package github

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "chronicle/internal/platform/errors"
	"chronicle/internal/platform/logger"
)

const (
	baseURLDefault  = "https://api.github.com"
	defaultTimeout  = 15 * time.Second
	defaultUA       = "chronicle-report"
	defaultPageSize = 100
	defaultCooldown = 60 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Token authenticates every request
	// Empty means tokenless which is very low quota so not recommended
	Token string

	// PageSize is the per_page value used when walking search results
	PageSize int

	// RateLimitCooldown is the wait before retrying a rate limited page when
	// the response headers carry no usable reset hint. Rate limit retries are
	// unbounded and always target the same page
	RateLimitCooldown time.Duration
}

// Client is a minimal GitHub REST client with fixed-delay rate limit recovery
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.RateLimitCooldown <= 0 {
		o.RateLimitCooldown = defaultCooldown
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("github"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Do issues a request with auth headers and rate limit handling.
// A rate limited response (403 or 429) sleeps and retries the same path
// indefinitely; any other non-2xx status is returned as a coded error
func (c *Client) Do(ctx context.Context, method, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/vnd.github+json")
		if c.opts.Token != "" {
			req.Header.Set("Authorization", "token "+c.opts.Token)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
		}

		// Always log lightweight response metadata
		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("github http response")

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			return resp, nil
		case http.StatusForbidden, http.StatusTooManyRequests:
			// Respect Retry-After and X-RateLimit-Reset when present,
			// otherwise fall back to the fixed cooldown
			wait := computeWait(rem, reset, retryAfter, c.now())
			if wait <= 0 {
				wait = c.opts.RateLimitCooldown
			}
			c.log.Warn().Dur("sleep", wait).Int("attempt", attempts).Str("path", path).
				Msg("github rate limited backing off")
			_ = drainAndClose(resp.Body)
			c.sleep(wait)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, statusError(resp.StatusCode, string(body))
		}
	}
}

// statusError maps a terminal HTTP status onto a coded error
func statusError(status int, body string) error {
	code := perr.ErrorCodeUnknown
	switch status {
	case http.StatusUnauthorized:
		code = perr.ErrorCodeUnauthorized
	case http.StatusNotFound, http.StatusGone:
		code = perr.ErrorCodeNotFound
	case http.StatusUnprocessableEntity:
		code = perr.ErrorCodeInvalidArgument
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		code = perr.ErrorCodeUnavailable
	}
	return perr.Newf(code, "github unexpected status %d body %s", status, body)
}
