package posts

import (
	"net/http"
	"slices"

	"pinboard/api"
)

// AllOptions are the filters of All.
type AllOptions struct {
	// Tags filters by up to 3 tags.
	Tags []string `param:"tag" validate:"max=3"`
	// Start is the offset value (default 0).
	Start *uint64 `param:"start"`
	// Results is the number of results to return (default all).
	Results *uint64 `param:"results"`
	// FromDt returns only bookmarks created after this date.
	FromDt *api.Date `param:"fromdt" validate:"omitempty,date"`
	// ToDt returns only bookmarks created before this date.
	ToDt *api.Date `param:"todt" validate:"omitempty,date"`
	// Meta includes a change detection signature for each bookmark.
	Meta *bool `param:"meta"`
}

// All returns all bookmarks in the user's account.
//
// https://pinboard.in/api/#posts_all
type All struct {
	opts AllOptions
}

// NewAll builds an All endpoint.
func NewAll(opts AllOptions) (*All, error) {
	if err := api.Validate(opts); err != nil {
		return nil, err
	}
	opts.Tags = slices.Clone(opts.Tags)
	opts.FromDt = cloneDate(opts.FromDt)
	opts.ToDt = cloneDate(opts.ToDt)
	return &All{opts: opts}, nil
}

func (a *All) Method() string {
	return http.MethodGet
}

func (a *All) Path() string {
	return "v1/posts/all"
}

func (a *All) Parameters() *api.QueryParams {
	params := &api.QueryParams{}
	params.
		PushTags("tag", a.opts.Tags).
		PushOpt("start", a.opts.Start).
		PushOpt("results", a.opts.Results).
		PushOpt("fromdt", a.opts.FromDt).
		PushOpt("todt", a.opts.ToDt).
		PushYesNo("meta", a.opts.Meta)
	return params
}

// SecsBetweenCalls implements api.Limiter. Pinboard allows one call every five minutes.
func (a *All) SecsBetweenCalls() int {
	return 300
}
