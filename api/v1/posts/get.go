package posts

import (
	"net/http"
	"net/url"

	"pinboard/api"
)

// GetOptions are the filters of Get.
type GetOptions struct {
	// Tag filters by a single tag.
	Tag string `param:"tag"`
	// Dt returns results bookmarked on this day.
	Dt *api.Date `param:"dt" validate:"omitempty,date"`
	// URL returns the bookmark for this URL.
	URL *url.URL `param:"url"`
	// Meta includes a change detection signature.
	Meta *bool `param:"meta"`
}

// Get returns one or more posts on a single day matching the arguments.
// With no date or URL, it returns the most recent date.
//
// https://pinboard.in/api/#posts_get
type Get struct {
	api.DefaultLimit

	opts GetOptions
}

// NewGet builds a Get endpoint.
func NewGet(opts GetOptions) (*Get, error) {
	if err := api.Validate(opts); err != nil {
		return nil, err
	}
	opts.Dt = cloneDate(opts.Dt)
	if opts.URL != nil {
		u := *opts.URL
		opts.URL = &u
	}
	return &Get{opts: opts}, nil
}

func (g *Get) Method() string {
	return http.MethodGet
}

func (g *Get) Path() string {
	return "v1/posts/get"
}

func (g *Get) Parameters() *api.QueryParams {
	params := &api.QueryParams{}
	params.
		PushYesNo("meta", g.opts.Meta).
		PushNonEmpty("tag", g.opts.Tag).
		PushOpt("url", g.opts.URL).
		PushOpt("dt", g.opts.Dt)
	return params
}

func cloneDate(d *api.Date) *api.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
