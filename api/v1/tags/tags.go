// Package tags contains the v1 tag endpoints.
//
// https://pinboard.in/api/#tags
package tags

import (
	"net/http"

	"pinboard/api"
)

// Get returns a full list of the user's tags along with the number of
// times each was used.
//
// https://pinboard.in/api/#tags_get
type Get struct {
	api.DefaultLimit
}

// NewGet builds a Get endpoint.
func NewGet() *Get {
	return &Get{}
}

func (g *Get) Method() string {
	return http.MethodGet
}

func (g *Get) Path() string {
	return "v1/tags/get"
}

func (g *Get) Parameters() *api.QueryParams {
	return nil
}

// Delete removes a tag from all bookmarks.
//
// https://pinboard.in/api/#tags_delete
type Delete struct {
	api.DefaultLimit

	tag string
}

// NewDelete builds a Delete endpoint for tag.
func NewDelete(tag string) (*Delete, error) {
	if tag == "" {
		return nil, &api.MissingFieldError{Field: "tag"}
	}
	return &Delete{tag: tag}, nil
}

func (d *Delete) Method() string {
	return http.MethodGet
}

func (d *Delete) Path() string {
	return "v1/tags/delete"
}

func (d *Delete) Parameters() *api.QueryParams {
	return (&api.QueryParams{}).Push("tag", d.tag)
}

// Rename changes a tag on all bookmarks. Matching is not case sensitive.
//
// https://pinboard.in/api/#tags_rename
type Rename struct {
	api.DefaultLimit

	old, new string
}

// NewRename builds a Rename endpoint from oldTag to newTag.
func NewRename(oldTag, newTag string) (*Rename, error) {
	if oldTag == "" {
		return nil, &api.MissingFieldError{Field: "old"}
	}
	if newTag == "" {
		return nil, &api.MissingFieldError{Field: "new"}
	}
	return &Rename{old: oldTag, new: newTag}, nil
}

func (r *Rename) Method() string {
	return http.MethodGet
}

func (r *Rename) Path() string {
	return "v1/tags/rename"
}

func (r *Rename) Parameters() *api.QueryParams {
	return (&api.QueryParams{}).
		Push("old", r.old).
		Push("new", r.new)
}
