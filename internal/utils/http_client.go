package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the identity-provider adapter gets the
// full resty API plus room for extension.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get(serverAddress + "/api/auth/session")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own configuration
// and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
