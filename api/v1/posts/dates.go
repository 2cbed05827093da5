package posts

import (
	"net/http"
	"slices"

	"pinboard/api"
)

// DatesOptions are the filters of Dates.
type DatesOptions struct {
	// Tags filters by up to 3 tags.
	Tags []string `param:"tag" validate:"max=3"`
}

// Dates returns a list of dates with the number of posts at each date.
//
// https://pinboard.in/api/#posts_dates
type Dates struct {
	api.DefaultLimit

	opts DatesOptions
}

// NewDates builds a Dates endpoint.
func NewDates(opts DatesOptions) (*Dates, error) {
	if err := api.Validate(opts); err != nil {
		return nil, err
	}
	opts.Tags = slices.Clone(opts.Tags)
	return &Dates{opts: opts}, nil
}

func (d *Dates) Method() string {
	return http.MethodGet
}

func (d *Dates) Path() string {
	return "v1/posts/dates"
}

func (d *Dates) Parameters() *api.QueryParams {
	params := &api.QueryParams{}
	params.PushTags("tag", d.opts.Tags)
	return params
}
