package posts

import (
	"net/http"
	"net/url"

	"pinboard/api"
)

// Delete removes a bookmark.
//
// https://pinboard.in/api/#posts_delete
type Delete struct {
	api.DefaultLimit

	url *url.URL
}

// NewDelete builds a Delete endpoint for bookmarkURL.
func NewDelete(bookmarkURL *url.URL) (*Delete, error) {
	if bookmarkURL == nil {
		return nil, &api.MissingFieldError{Field: "url"}
	}
	u := *bookmarkURL
	return &Delete{url: &u}, nil
}

func (d *Delete) Method() string {
	return http.MethodGet
}

func (d *Delete) Path() string {
	return "v1/posts/delete"
}

func (d *Delete) Parameters() *api.QueryParams {
	return (&api.QueryParams{}).Push("url", d.url)
}
