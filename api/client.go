package api

import (
	"net/http"
	"net/url"
)

// RestClient resolves endpoint paths into request URLs.
type RestClient interface {
	// RestURL joins endpoint with the base URL and adds the parameters
	// every call carries (format=json and, in URL mode, the token).
	RestURL(endpoint string) (*url.URL, error)
}

// Client performs a single HTTP exchange for the dispatcher.
type Client interface {
	RestClient

	// Rest decorates req with credentials, sends it and returns the raw
	// response. It must not retry.
	Rest(req *http.Request) (*http.Response, error)
}
