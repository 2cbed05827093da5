package posts

import (
	"net/http"
	"slices"

	"pinboard/api"
)

// RecentOptions are the filters of Recent.
type RecentOptions struct {
	// Tags filters by up to 3 tags.
	Tags []string `param:"tag" validate:"max=3"`
	// Count is the number of results to return, at most 100.
	Count *int `param:"count" validate:"omitempty,min=0,max=100"`
}

// Recent returns a list of the user's most recent posts.
//
// https://pinboard.in/api/#posts_recent
type Recent struct {
	opts RecentOptions
}

// NewRecent builds a Recent endpoint.
func NewRecent(opts RecentOptions) (*Recent, error) {
	if err := api.Validate(opts); err != nil {
		return nil, err
	}
	opts.Tags = slices.Clone(opts.Tags)
	if opts.Count != nil {
		count := *opts.Count
		opts.Count = &count
	}
	return &Recent{opts: opts}, nil
}

func (r *Recent) Method() string {
	return http.MethodGet
}

func (r *Recent) Path() string {
	return "v1/posts/recent"
}

func (r *Recent) Parameters() *api.QueryParams {
	params := &api.QueryParams{}
	params.
		PushTags("tag", r.opts.Tags).
		PushOpt("count", r.opts.Count)
	return params
}

// SecsBetweenCalls implements api.Limiter. Pinboard allows one call a minute.
func (r *Recent) SecsBetweenCalls() int {
	return 60
}
