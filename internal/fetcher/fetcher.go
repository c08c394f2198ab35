// Package fetcher retrieves page content over HTTP(S). A single attempt
// per call: retry policy, if any, belongs to the caller.
package fetcher

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultUserAgent mimics a real browser; many storefronts block
	// default tooling agents outright.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultTimeout bounds one fetch end to end.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize caps how much of a response is read.
	DefaultMaxBodySize = 4 << 20
)

// Result is the raw outcome of fetching one page.
type Result struct {
	// Body is the response body, possibly truncated at the size cap.
	Body []byte
	// FinalURL is the URL after following redirects.
	FinalURL string
	// StatusCode is the HTTP status of the final response.
	StatusCode int
}

// Client fetches pages with a browser-like identity and a bounded
// response size. The zero value is not usable; call New.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// WithMaxBodySize caps how many bytes of a response are read. Zero or
// negative disables the cap.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a fetch client with browser-like defaults.
func New(options ...Option) *Client {
	client := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// NormalizeURL prepends https:// when the target has no scheme.
func NormalizeURL(target string) string {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		return "https://" + target
	}
	return target
}

// Fetch performs one GET against the target. Redirects are followed; the
// returned Result carries the final URL. A non-2xx status yields a
// *FetchError, transport failures a *NetworkError. No retries.
func (c *Client) Fetch(ctx context.Context, target string) (*Result, error) {
	target = NormalizeURL(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: finalURL, StatusCode: resp.StatusCode}
	}

	var reader io.Reader = resp.Body
	if c.maxBodySize > 0 {
		reader = io.LimitReader(resp.Body, c.maxBodySize)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &NetworkError{URL: finalURL, Err: err}
	}

	return &Result{
		Body:       body,
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
	}, nil
}
