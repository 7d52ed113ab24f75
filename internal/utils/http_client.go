package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// UserAgent is sent with every request.
const UserAgent = "writenest-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for baseURL with the given timeout.
// Every request gets JSON accept headers and an X-Request-ID header, taken
// from the request context when present and generated otherwise.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(r.Context())
		if !ok {
			id = ids.Generate()
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: client}
}
