package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second, 2)
//	resp, err := client.R().Get("/api/Expenses")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// Transport errors are retried up to retryCount times. Server errors
// (5xx) are retried only for idempotent GET requests.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration, retryCount int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryIdempotentServerErrors)

	return &HTTPClient{Client: client}
}

func retryIdempotentServerErrors(r *resty.Response, err error) bool {
	if err != nil || r == nil || r.Request == nil {
		return false
	}
	return r.Request.Method == http.MethodGet && r.StatusCode() >= http.StatusInternalServerError
}
