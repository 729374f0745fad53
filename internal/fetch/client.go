// Package fetch implements the outbound HTTP transport for source feeds.
//
// Redirects are followed by hand so the hop bound is explicit, and a single
// rate-limit style response (HTTP 403) earns one delayed retry before the
// source is given up on.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Defaults applied when Config leaves a knob zero.
const (
	DefaultMaxRedirects = 5
	DefaultBackoff      = 500 * time.Millisecond
	DefaultTimeout      = 15 * time.Second
)

// FetchError describes an unrecoverable fetch failure. Status is zero when
// the failure was not an HTTP status (Reason is set instead).
type FetchError struct {
	URL    string
	Status int
	Reason string
}

func (e *FetchError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

// Config controls Client behavior.
type Config struct {
	UserAgent    string
	Timeout      time.Duration
	Backoff      time.Duration
	MaxRedirects int
}

// Client implements feed.Fetcher over net/http.
type Client struct {
	http      *http.Client
	userAgent string
	backoff   time.Duration
	maxHops   int
}

// New builds a Client. Automatic redirect following is disabled; FetchBody
// inspects 3xx responses itself.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	maxHops := cfg.MaxRedirects
	if maxHops <= 0 {
		maxHops = DefaultMaxRedirects
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: cfg.UserAgent,
		backoff:   backoff,
		maxHops:   maxHops,
	}
}

// FetchBody performs a GET against url with the given Accept header and
// returns the response body. 3xx responses are re-issued against the
// resolved Location up to the hop bound; the first 403 is retried once
// after a short delay.
func (c *Client) FetchBody(ctx context.Context, url string, accept string) ([]byte, error) {
	current := url
	retriedForbidden := false

	for hop := 0; hop <= c.maxHops; hop++ {
		resp, err := c.get(ctx, current, accept)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			body, readErr := io.ReadAll(resp.Body)
			closeQuietly(resp)
			if readErr != nil {
				return nil, fmt.Errorf("read body of %s: %w", current, readErr)
			}
			return body, nil

		case resp.StatusCode >= 300 && resp.StatusCode < 400:
			location := resp.Header.Get("Location")
			closeQuietly(resp)
			if location == "" {
				return nil, &FetchError{URL: current, Status: resp.StatusCode, Reason: "redirect-without-location"}
			}
			next, resolveErr := resp.Request.URL.Parse(location)
			if resolveErr != nil {
				return nil, &FetchError{URL: current, Reason: "unresolvable-redirect"}
			}
			current = next.String()

		case resp.StatusCode == http.StatusForbidden && !retriedForbidden:
			closeQuietly(resp)
			retriedForbidden = true
			if err := c.sleep(ctx); err != nil {
				return nil, err
			}
			hop-- // the retry does not consume a redirect hop

		default:
			closeQuietly(resp)
			return nil, &FetchError{URL: current, Status: resp.StatusCode}
		}
	}

	return nil, &FetchError{URL: current, Reason: "too-many-redirects"}
}

func (c *Client) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	return resp, nil
}

func (c *Client) sleep(ctx context.Context) error {
	timer := time.NewTimer(c.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func closeQuietly(resp *http.Response) {
	_ = resp.Body.Close()
}
