package posts

import (
	"net/http"

	"pinboard/api"
)

// Update returns the most recent time a bookmark was added, updated or deleted.
//
// https://pinboard.in/api/#posts_update
type Update struct {
	api.DefaultLimit
}

// NewUpdate builds an Update endpoint.
func NewUpdate() *Update {
	return &Update{}
}

func (u *Update) Method() string {
	return http.MethodGet
}

func (u *Update) Path() string {
	return "v1/posts/update"
}

func (u *Update) Parameters() *api.QueryParams {
	return nil
}
