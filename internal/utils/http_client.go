package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// HTTPClient embeds *resty.Client so callers get the full request builder.
type HTTPClient struct {
	*resty.Client
}

type HTTPClientOption func(*resty.Client)

// WithTimeout bounds every single attempt. Zero keeps resty's default.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithRetries retries transport errors, 5xx and 429 responses count times
// with a bounded backoff.
func WithRetries(count int) HTTPClientOption {
	return func(c *resty.Client) {
		if count <= 0 {
			return
		}
		c.SetRetryCount(count).
			SetRetryWaitTime(retryWaitTime).
			SetRetryMaxWaitTime(retryMaxWaitTime).
			AddRetryCondition(retryableResponse)
	}
}

func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}

func retryableResponse(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return r.StatusCode() >= http.StatusInternalServerError || r.StatusCode() == http.StatusTooManyRequests
}
