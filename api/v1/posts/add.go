package posts

import (
	"net/http"
	"net/url"
	"slices"

	"pinboard/api"
)

// AddOptions are the optional fields of Add.
type AddOptions struct {
	// Description is the title of the bookmark. It defaults to the URL.
	Description string `param:"description"`
	// Extended is the longer description of the bookmark.
	Extended string `param:"extended"`
	// Tags to attach, at most 100.
	Tags []string `param:"tags" validate:"max=100"`
	// Dt is the creation date of the bookmark.
	Dt *api.Date `param:"dt" validate:"omitempty,date"`
	// Replace an existing bookmark for the URL. The server defaults to yes
	// and reports an error when this is false and the bookmark exists.
	Replace *bool `param:"replace"`
	// Shared makes the bookmark public.
	Shared *bool `param:"shared"`
	// ToRead marks the bookmark as unread.
	ToRead *bool `param:"toread"`
}

// Add saves a bookmark.
//
// https://pinboard.in/api/#posts_add
type Add struct {
	api.DefaultLimit

	url  *url.URL
	opts AddOptions
}

// NewAdd builds an Add endpoint for bookmarkURL.
func NewAdd(bookmarkURL *url.URL, opts AddOptions) (*Add, error) {
	if bookmarkURL == nil {
		return nil, &api.MissingFieldError{Field: "url"}
	}
	if err := api.Validate(opts); err != nil {
		return nil, err
	}
	if opts.Description == "" {
		opts.Description = bookmarkURL.String()
	}
	opts.Tags = slices.Clone(opts.Tags)
	opts.Dt = cloneDate(opts.Dt)
	u := *bookmarkURL
	return &Add{url: &u, opts: opts}, nil
}

// Description returns the title that will be sent.
func (a *Add) Description() string {
	return a.opts.Description
}

func (a *Add) Method() string {
	return http.MethodGet
}

func (a *Add) Path() string {
	return "v1/posts/add"
}

func (a *Add) Parameters() *api.QueryParams {
	params := &api.QueryParams{}
	params.
		Push("url", a.url).
		Push("description", a.opts.Description).
		PushNonEmpty("extended", a.opts.Extended).
		PushTags("tags", a.opts.Tags).
		PushOpt("dt", a.opts.Dt).
		PushYesNo("replace", a.opts.Replace).
		PushYesNo("shared", a.opts.Shared).
		PushYesNo("toread", a.opts.ToRead)
	return params
}
