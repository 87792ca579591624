package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client for callers of the restaurant API, such as
// the sample-data seeder. Embedding exposes the full resty API; the wrapper
// exists so behavior shared by all API callers has a single place to live.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with a default-configured resty client.
// Each call yields an independent instance with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
