// Package pinboard is a client for the Pinboard bookmarking API.
//
// A Client carries the base URL, the token and the HTTP transport. It
// satisfies api.Client, so any endpoint from the api/v1 and api/v2
// packages can be sent with api.Query, api.Ignore or their async forms.
package pinboard

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pinboard/api"
)

// DefaultHost is the production API host.
const DefaultHost = "api.pinboard.in"

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger is the subset of a leveled logger the client uses.
type Logger interface {
	Debugf(format string, v ...any)
	Warnf(format string, v ...any)
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...any) {}
func (discardLogger) Warnf(string, ...any)  {}

// Client represents a Pinboard API client for a single user. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL  *url.URL
	auth     Auth
	authMode AuthMode
	doer     Doer
	logger   Logger

	rawBaseURL string
}

var _ api.Client = &Client{}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets the transport. Timeouts, retries and connection
// pooling are the transport's business.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAuthMode selects how the token is sent.
func WithAuthMode(mode AuthMode) Option {
	return func(c *Client) {
		c.authMode = mode
	}
}

// WithBaseURL replaces https://<host>/ with an arbitrary base URL.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) {
		c.rawBaseURL = rawURL
	}
}

// NewClient creates a new client for host (usually DefaultHost) using the
// personal API token.
func NewClient(host, token string, opts ...Option) (*Client, error) {
	c := &Client{
		auth:       TokenAuth(token),
		authMode:   AuthURL,
		doer:       http.DefaultClient,
		logger:     discardLogger{},
		rawBaseURL: "https://" + host + "/",
	}
	for _, opt := range opts {
		opt(c)
	}

	parsedURL, err := url.ParseRequestURI(c.rawBaseURL)
	if err != nil {
		return nil, &api.URLParseError{Err: err}
	}
	if parsedURL.Host == "" {
		return nil, &api.URLParseError{Err: fmt.Errorf("missing host in %q", c.rawBaseURL)}
	}
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}
	c.baseURL = parsedURL
	return c, nil
}

// BaseURL returns a copy of the base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// AuthMode returns how the token is sent.
func (c *Client) AuthMode() AuthMode {
	return c.authMode
}

// RestURL implements api.RestClient.
func (c *Client) RestURL(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, &api.URLParseError{Err: err}
	}
	reqURL := c.baseURL.ResolveReference(ref)
	(&api.QueryParams{}).Push("format", "json").AddToURL(reqURL)
	if c.authMode == AuthURL {
		c.auth.AddToURL(reqURL)
	}
	return reqURL, nil
}

// Rest implements api.Client.
func (c *Client) Rest(req *http.Request) (*http.Response, error) {
	if c.authMode == AuthHeader {
		if err := c.auth.SetHeader(req.Header); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	target := redactURL(req.URL)
	c.logger.Debugf("pinboard: %-7s %s", req.Method, target)

	resp, err := c.doer.Do(req)
	if err != nil {
		err = redactError(err)
		c.logger.Debugf("pinboard: %-7s %s failed: %v", req.Method, target, err)
		return nil, err
	}

	c.logger.Debugf("pinboard: %-7s %s %d %s", req.Method, target, resp.StatusCode, time.Since(start))
	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warnf("pinboard: %s %s returned status %d", req.Method, target, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("pinboard.Client{url: %s, auth: %s}", c.baseURL, c.authMode)
}

// GoString keeps the token out of %#v.
func (c *Client) GoString() string {
	return c.String()
}
