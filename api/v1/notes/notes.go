// Package notes contains the v1 notes endpoints.
//
// https://pinboard.in/api/#notes
package notes

import (
	"net/http"
	"net/url"

	"pinboard/api"
)

// List returns a list of the user's notes.
//
// https://pinboard.in/api/#notes_list
type List struct {
	api.DefaultLimit
}

// NewList builds a List endpoint.
func NewList() *List {
	return &List{}
}

func (l *List) Method() string {
	return http.MethodGet
}

func (l *List) Path() string {
	return "v1/notes/list"
}

func (l *List) Parameters() *api.QueryParams {
	return nil
}

// Note returns an individual user note. The hash property is a 20
// character long sha1 hash of the note text.
//
// https://pinboard.in/api/#notes_get
type Note struct {
	api.DefaultLimit

	id string
}

// NewNote builds a Note endpoint for the note id.
func NewNote(id string) (*Note, error) {
	if id == "" {
		return nil, &api.MissingFieldError{Field: "id"}
	}
	return &Note{id: id}, nil
}

func (n *Note) Method() string {
	return http.MethodGet
}

func (n *Note) Path() string {
	return "v1/notes/" + url.PathEscape(n.id) + "/"
}

func (n *Note) Parameters() *api.QueryParams {
	return nil
}
