package download

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// StatusFailed is passed to a Callback when no HTTP response was received.
const StatusFailed = -1

// ErrInvalidURL is returned for URLs without a host.
var ErrInvalidURL = errors.New("invalid url")

// Callback receives the HTTP status and body text, or StatusFailed and the
// error message.
type Callback func(status int, body string)

var defaultClient = sync.OnceValue(func() *Client { return NewClient() })

// DownloadAsString downloads rawURL with the default client.
func DownloadAsString(rawURL, userAgent string, callback Callback) {
	defaultClient().DownloadAsString(rawURL, userAgent, callback)
}

// DownloadAsString starts a single GET of rawURL and returns immediately.
// callback is invoked exactly once from another goroutine.
func (c *Client) DownloadAsString(rawURL, userAgent string, callback Callback) {
	go func() {
		status, body, err := c.Fetch(context.Background(), rawURL, userAgent)
		if err != nil {
			callback(StatusFailed, err.Error())
			return
		}
		callback(status, body)
	}()
}

// Fetch performs a single GET of rawURL with the given User-Agent and
// returns the status code and body decoded as UTF-8 text. An empty userAgent
// omits the header. Invalid UTF-8 is replaced with U+FFFD. Non-2xx
// responses are not errors.
func (c *Client) Fetch(ctx context.Context, rawURL, userAgent string) (int, string, error) {
	target, err := parseURL(rawURL)
	if err != nil {
		c.logger.Warn("Rejected download URL", zap.String("url", rawURL), zap.Error(err))
		return StatusFailed, "", err
	}

	resp, err := c.resty.R().
		SetContext(withUserAgent(ctx, userAgent)).
		Get(target.String())
	if err != nil {
		c.logger.Warn("Download failed", zap.String("url", rawURL), zap.Error(err))
		return StatusFailed, "", fmt.Errorf("download %s: %w", target.Redacted(), err)
	}

	body := strings.ToValidUTF8(string(resp.Body()), "\uFFFD")
	c.logger.Debug("Download complete",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode()),
		zap.Int("size", len(body)),
		zap.Duration("time", resp.Time()))
	return resp.StatusCode(), body, nil
}

// parseURL accepts absolute http and https URLs. A URL without a scheme is
// treated as http.
func parseURL(rawURL string) (*url.URL, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, target.Scheme)
	}
	if target.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
	}
	return target, nil
}
