package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pinboard/api"
	"pinboard/api/apitest"
	"pinboard/internal/config"
	"pinboard/internal/logger"
)

// MockRoundTripper is a mock implementation of http.RoundTripper for testing.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if m.RoundTripFunc != nil {
		return m.RoundTripFunc(req)
	}
	return nil, fmt.Errorf("mock RoundTripFunc not set")
}

var testLogger = logger.New(logger.DEBUG)

func newTestApp(t *testing.T, expected apitest.Expected) (*App, *apitest.Client) {
	t.Helper()
	client := apitest.NewClient(t, expected)
	return NewApp(WithClient(client), WithLogger(testLogger)), client
}

func TestRecent(t *testing.T) {
	application, client := newTestApp(t, apitest.Expected{
		Path: "v1/posts/recent",
		Query: []api.Param{
			{Key: "tag", Value: "go web"},
			{Key: "count", Value: "2"},
		},
		Body: []byte(`{"date":"2024-10-27T17:38:11Z","user":"alice","posts":[
			{"href":"https://go.dev/","description":"Go","hash":"a","time":"2024-10-27T17:38:11Z","tags":"go web"},
			{"href":"https://pkg.go.dev/","description":"Packages","hash":"b","time":"2024-10-26T10:00:00Z","tags":""}
		]}`),
	})

	var out bytes.Buffer
	if err := application.Recent(context.Background(), &out, 2, []string{"go", "web"}); err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	expected := "2 Recent posts for alice at 2024-10-27T17:38:11Z\n" +
		"- Go\n  https://go.dev/\n  (go, web)\n" +
		"- Packages\n  https://pkg.go.dev/\n"
	if out.String() != expected {
		t.Errorf("Unexpected output:\nactual  : %q\nexpected: %q", out.String(), expected)
	}
	if client.Requests() != 1 {
		t.Errorf("Expected 1 request, got %d", client.Requests())
	}
}

func TestRecentTooManyTags(t *testing.T) {
	application, client := newTestApp(t, apitest.Expected{Path: "v1/posts/recent"})

	err := application.Recent(context.Background(), &bytes.Buffer{}, 10, []string{"a", "b", "c", "d"})
	var ce *api.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConstraintError, got %v", err)
	}
	if client.Requests() != 0 {
		t.Errorf("Expected no request for an invalid endpoint, got %d", client.Requests())
	}
}

func TestDates(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path:  "v1/posts/dates",
		Query: []api.Param{{Key: "tag", Value: "go"}},
		Body:  []byte(`{"user":"alice","tag":"go","dates":{"2024-10-27":"2","2024-01-05":"7"}}`),
	})

	var out bytes.Buffer
	if err := application.Dates(context.Background(), &out, []string{"go"}); err != nil {
		t.Fatalf("Dates failed: %v", err)
	}
	expected := "user: alice\ntags: go\nDates: (Date :: Count)\n * 2024-01-05 :: 7\n * 2024-10-27 :: 2\n"
	if out.String() != expected {
		t.Errorf("Unexpected output:\nactual  : %q\nexpected: %q", out.String(), expected)
	}
}

func TestSuggest(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path:  "v1/posts/suggest",
		Query: []api.Param{{Key: "url", Value: "https://go.dev/"}},
		Body:  []byte(`[{"popular":["golang"]},{"recommended":["go","programming"]}]`),
	})

	var out bytes.Buffer
	if err := application.Suggest(context.Background(), &out, "https://go.dev/"); err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	expected := "Popular: golang\nRecommended: go, programming\n"
	if out.String() != expected {
		t.Errorf("Unexpected output:\nactual  : %q\nexpected: %q", out.String(), expected)
	}
}

func TestSuggestRelativeURL(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{Path: "v1/posts/suggest"})

	err := application.Suggest(context.Background(), &bytes.Buffer{}, "go.dev")
	var upe *api.URLParseError
	if !errors.As(err, &upe) {
		t.Errorf("Expected URLParseError, got %v", err)
	}
}

func TestTags(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path: "v1/tags/get",
		Body: []byte(`{"web":"3","go":"12","api":"3"}`),
	})

	var out bytes.Buffer
	if err := application.Tags(context.Background(), &out); err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	expected := "    12 go\n     3 api\n     3 web\n"
	if out.String() != expected {
		t.Errorf("Unexpected output:\nactual  : %q\nexpected: %q", out.String(), expected)
	}
}

func TestUpdate(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path: "v1/posts/update",
		Body: []byte(`{"update_time":"2024-10-27T17:38:11Z"}`),
	})

	var out bytes.Buffer
	if err := application.Update(context.Background(), &out); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if out.String() != "Last update: 2024-10-27T17:38:11Z\n" {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestUpdateAPIError(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path:   "v1/posts/update",
		Status: http.StatusTooManyRequests,
		Body:   []byte(`{"error_message":"too many requests"}`),
	})

	err := application.Update(context.Background(), &bytes.Buffer{})
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", apiErr.StatusCode)
	}
}

func TestAddFetchTitle(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>\n  The Go\n  Programming Language </title></head><body><title>ignored</title></body></html>"))
	}))
	defer page.Close()

	shared := false
	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/posts/add",
		Query: []api.Param{
			{Key: "url", Value: page.URL},
			{Key: "description", Value: "The Go Programming Language"},
			{Key: "tags", Value: "go"},
			{Key: "shared", Value: "no"},
		},
		Body: []byte(`{"result_code":"done"}`),
	})
	application := NewApp(WithClient(client), WithLogger(testLogger), WithHTTPClient(page.Client()))

	var out bytes.Buffer
	err := application.Add(context.Background(), &out, AddRequest{
		URL:        page.URL,
		Tags:       []string{"go"},
		Shared:     &shared,
		FetchTitle: true,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if out.String() != "done\n" {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestAddFetchTitleFallsBackToURL(t *testing.T) {
	doer := &http.Client{Transport: &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}}}
	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/posts/add",
		Query: []api.Param{
			{Key: "url", Value: "https://go.dev/"},
			{Key: "description", Value: "https://go.dev/"},
		},
		Body: []byte(`{"result_code":"done"}`),
	})
	application := NewApp(WithClient(client), WithLogger(testLogger), WithHTTPClient(doer))

	if err := application.Add(context.Background(), &bytes.Buffer{}, AddRequest{URL: "https://go.dev/", FetchTitle: true}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
}

func TestAddNotDone(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path: "v1/posts/add",
		Query: []api.Param{
			{Key: "url", Value: "https://go.dev/"},
			{Key: "description", Value: "Go"},
		},
		Body: []byte(`{"result_code":"item already exists"}`),
	})

	var out bytes.Buffer
	err := application.Add(context.Background(), &out, AddRequest{URL: "https://go.dev/", Description: "Go"})
	if err == nil || !strings.Contains(err.Error(), "item already exists") {
		t.Errorf("Expected the result code in the error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	application, _ := newTestApp(t, apitest.Expected{
		Path:  "v1/posts/delete",
		Query: []api.Param{{Key: "url", Value: "https://go.dev/"}},
		Body:  []byte(`{"result_code":"done"}`),
	})

	var out bytes.Buffer
	if err := application.Delete(context.Background(), &out, "https://go.dev/"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if out.String() != "done\n" {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestFetchTitle(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected string
		hasError bool
	}{
		{
			name:     "simple title",
			status:   http.StatusOK,
			body:     "<html><head><title>Hello</title></head></html>",
			expected: "Hello",
		},
		{
			name:     "entities are decoded",
			status:   http.StatusOK,
			body:     "<title>Tom &amp; Jerry</title>",
			expected: "Tom & Jerry",
		},
		{
			name:     "missing title",
			status:   http.StatusOK,
			body:     "<html><body><p>no title</p></body></html>",
			hasError: true,
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     "<title>Oops</title>",
			hasError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			application := NewApp(WithHTTPClient(server.Client()), WithLogger(testLogger))
			title, err := application.FetchTitle(context.Background(), server.URL)
			if (err != nil) != tc.hasError {
				t.Fatalf("FetchTitle() error = %v, hasError %v", err, tc.hasError)
			}
			if title != tc.expected {
				t.Errorf("Expected title %q, got %q", tc.expected, title)
			}
		})
	}
}

func TestRecentCount(t *testing.T) {
	if got := NewApp().RecentCount(); got != DefaultRecentCount {
		t.Errorf("Expected %d without a configuration, got %d", DefaultRecentCount, got)
	}

	cfg := &config.Config{Recent: config.ConfigRecent{Count: 25}}
	if got := NewApp(WithConfig(cfg)).RecentCount(); got != 25 {
		t.Errorf("Expected the configured count 25, got %d", got)
	}
}
