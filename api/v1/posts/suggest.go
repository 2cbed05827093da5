package posts

import (
	"net/http"
	"net/url"

	"pinboard/api"
)

// Suggest returns popular and recommended tags for a URL.
//
// https://pinboard.in/api/#posts_suggest
type Suggest struct {
	api.DefaultLimit

	url *url.URL
}

// NewSuggest builds a Suggest endpoint for bookmarkURL.
func NewSuggest(bookmarkURL *url.URL) (*Suggest, error) {
	if bookmarkURL == nil {
		return nil, &api.MissingFieldError{Field: "url"}
	}
	u := *bookmarkURL
	return &Suggest{url: &u}, nil
}

func (s *Suggest) Method() string {
	return http.MethodGet
}

func (s *Suggest) Path() string {
	return "v1/posts/suggest"
}

func (s *Suggest) Parameters() *api.QueryParams {
	return (&api.QueryParams{}).Push("url", s.url)
}
