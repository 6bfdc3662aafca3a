package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client wraps HTTP operations with Steam-friendly configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Retries with exponential backoff for transient failures
//   - FetchError for every request that ultimately fails
//
// Example usage:
//
//	client := NewClient(Options{Timeout: 30 * time.Second, Retry: DefaultRetryPolicy()}, logger)
//
//	// Fetch a screenshot detail page
//	html, err := client.GetString(ctx, "https://steamcommunity.com/sharedfiles/filedetails/?id=1")
//
//	// Download an image
//	data, err := client.DownloadBytes(ctx, imageURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
	retry      RetryPolicy
	logger     *zap.Logger
}

// Options configures a Client.
type Options struct {
	// Timeout bounds a single request attempt. Zero means 60 seconds.
	Timeout time.Duration

	// UserAgent is sent with every request. Empty means DefaultUserAgent.
	UserAgent string

	// Retry controls how failed requests are retried.
	Retry RetryPolicy
}

// DefaultUserAgent is used when Options.UserAgent is empty.
const DefaultUserAgent = "VirtualMoments"

// NewClient creates a new HTTP client.
//
// A nil logger disables retry logging.
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
		retry:     opts.Retry,
		logger:    logger,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Network errors, 5xx and 429 responses are retried according to the
// client's RetryPolicy. Other non-200 statuses fail immediately.
//
// The returned error is always a *FetchError:
//
//	data, err := client.Get(ctx, url)
//	var fe *FetchError
//	if errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound {
//	    // screenshot was deleted
//	}
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	attempt := 0
	err := c.retry.Do(ctx, func() error {
		attempt++
		data, err := c.get(ctx, url)
		if err != nil {
			c.logger.Debug("request failed",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		body = data
		return nil
	}, isRetryable)
	if err != nil {
		return nil, asFetchError(url, err)
	}

	return body, nil
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like HTML.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for images such as album cover sources.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return data, nil
}
