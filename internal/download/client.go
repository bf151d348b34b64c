package download

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Client wraps resty configured for single-attempt text downloads.
type Client struct {
	resty  *resty.Client
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger routes client diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTransport replaces the pooled transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.resty.SetTransport(rt)
		}
	}
}

// NewClient creates a download client.
func NewClient(opts ...Option) *Client {
	// Only the pooled transport is taken from the retryable client; the
	// request itself is never retried.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetTransport(retryClient.HTTPClient.Transport).
		SetCookieJar(nil).
		SetRetryCount(0).
		SetPreRequestHook(applyUserAgent).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	c := &Client{
		resty:  restyClient,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.Named("download")
	c.resty.SetLogger(c.logger.Sugar())
	return c
}

type userAgentKey struct{}

// withUserAgent records the caller's User-Agent for applyUserAgent.
func withUserAgent(ctx context.Context, userAgent string) context.Context {
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

// applyUserAgent restores the caller's User-Agent after resty has filled in
// its own default. An empty value omits the header.
func applyUserAgent(_ *resty.Client, req *http.Request) error {
	if userAgent, ok := req.Context().Value(userAgentKey{}).(string); ok {
		req.Header.Set("User-Agent", userAgent)
	}
	return nil
}
