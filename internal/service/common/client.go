//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/oshokin/rust-site-config/internal/domain/site"
	"github.com/oshokin/rust-site-config/internal/version"
)

// Client fetches remote resources over HTTP.
type Client struct {
	// http performs the requests; it never carries a client-wide timeout.
	http *http.Client
	// callTimeout bounds a single request including reading its body.
	callTimeout time.Duration
	// userAgent is sent with every request.
	userAgent string
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a timeout for each request. Zero disables it.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.callTimeout = timeout
		}
	}
}

// WithHTTPClient replaces the pooled cleanhttp client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// NewClient returns a client backed by a pooled cleanhttp client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		http:      cleanhttp.DefaultPooledClient(),
		userAgent: version.UserAgent(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get requests url and returns the response body.
// The caller must close the body; closing it also releases the call timeout.
func (c *Client) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	callCtx, cancel := c.callContext(ctx)

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, url, http.NoBody)
	if err != nil {
		cancel()

		return nil, fmt.Errorf("%w: build request for %s: %w", site.ErrNetwork, url, err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	response, err := c.http.Do(req)
	if err != nil {
		cancel()

		return nil, fmt.Errorf("%w: fetch %s: %w", site.ErrNetwork, url, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		_ = response.Body.Close()

		cancel()

		return nil, fmt.Errorf("%w: fetch %s: unexpected http status %s", site.ErrNetwork, url, response.Status)
	}

	return &cancelOnClose{ReadCloser: response.Body, cancel: cancel}, nil
}

// GetBytes requests url and reads the whole response body.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = body.Close()
	}()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", site.ErrNetwork, url, err)
	}

	return data, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

// cancelOnClose ties the request context to the lifetime of the body.
type cancelOnClose struct {
	io.ReadCloser

	cancel context.CancelFunc
}

// Close closes the body and cancels the request context.
func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()

	return err
}
