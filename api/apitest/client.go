// Package apitest provides a canned api.Client for endpoint tests.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pinboard/api"
)

// BaseURL is the base every request built by Client resolves against.
const BaseURL = "https://api.pinboard.invalid/"

// Expected describes the request a test expects and the response to give back.
type Expected struct {
	// Method defaults to GET.
	Method string
	// Path is the endpoint path relative to BaseURL.
	Path string
	// Query lists the endpoint parameters in order, without format=json.
	Query []api.Param
	// ContentType is the expected request content type, if any.
	ContentType string
	// RequestBody is the expected request body.
	RequestBody []byte

	// Status defaults to 200.
	Status int
	// Body is returned as the response body.
	Body []byte
	// Err, when set, is returned instead of a response.
	Err error
}

// Client checks each request against Expected and answers with the canned response.
type Client struct {
	t        testing.TB
	expected Expected

	mu       sync.Mutex
	requests int
}

// NewClient returns a Client answering with body.
func NewClient(t testing.TB, expected Expected) *Client {
	if expected.Method == "" {
		expected.Method = http.MethodGet
	}
	if expected.Status == 0 {
		expected.Status = http.StatusOK
	}
	return &Client{t: t, expected: expected}
}

// RestURL implements api.RestClient.
func (c *Client) RestURL(endpoint string) (*url.URL, error) {
	u, err := url.Parse(BaseURL + endpoint)
	if err != nil {
		return nil, &api.URLParseError{Err: err}
	}
	(&api.QueryParams{}).Push("format", "json").AddToURL(u)
	return u, nil
}

// Rest implements api.Client.
func (c *Client) Rest(req *http.Request) (*http.Response, error) {
	c.t.Helper()
	c.mu.Lock()
	c.requests++
	c.mu.Unlock()

	if req.Method != c.expected.Method {
		c.t.Errorf("Expected method %s, got %s", c.expected.Method, req.Method)
	}
	if req.URL.Scheme != "https" || req.URL.Host != "api.pinboard.invalid" {
		c.t.Errorf("Expected request to https://api.pinboard.invalid, got %s://%s", req.URL.Scheme, req.URL.Host)
	}
	if req.URL.Path != "/"+c.expected.Path {
		c.t.Errorf("Expected to request '/%s', got '%s'", c.expected.Path, req.URL.Path)
	}
	if req.URL.Fragment != "" {
		c.t.Errorf("Expected no fragment, got %q", req.URL.Fragment)
	}
	want := append([]api.Param{{Key: "format", Value: "json"}}, c.expected.Query...)
	if diff := cmp.Diff(want, ParseQuery(c.t, req.URL.RawQuery)); diff != "" {
		c.t.Errorf("Unexpected query parameters (-want +got):\n%s", diff)
	}
	if got := req.Header.Get("Content-Type"); got != c.expected.ContentType {
		c.t.Errorf("Expected content type %q, got %q", c.expected.ContentType, got)
	}
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			c.t.Fatalf("Failed to read request body: %v", err)
		}
	}
	if !bytes.Equal(body, c.expected.RequestBody) {
		c.t.Errorf("Unexpected request body:\nactual  : %s\nexpected: %s", body, c.expected.RequestBody)
	}

	if c.expected.Err != nil {
		return nil, c.expected.Err
	}
	return &http.Response{
		StatusCode: c.expected.Status,
		Status:     http.StatusText(c.expected.Status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(c.expected.Body)),
		Request:    req,
	}, nil
}

// Requests returns how many requests reached the client.
func (c *Client) Requests() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests
}

// ParseQuery decodes a raw query string preserving order and duplicates.
func ParseQuery(t testing.TB, rawQuery string) []api.Param {
	t.Helper()
	var params []api.Param
	if rawQuery == "" {
		return params
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			t.Fatalf("Invalid query key %q: %v", k, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			t.Fatalf("Invalid query value %q: %v", v, err)
		}
		params = append(params, api.Param{Key: key, Value: value})
	}
	return params
}
