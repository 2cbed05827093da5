package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html"

	"pinboard/api"
	"pinboard/api/v1/posts"
	"pinboard/api/v1/tags"
	"pinboard/internal/config"
	"pinboard/internal/logger"
	v1 "pinboard/types/v1"
)

// DefaultRecentCount is the recent count used without a configuration.
const DefaultRecentCount = 10

// maxPageSize caps the page read by FetchTitle.
const maxPageSize = 1 << 22

// App holds the application's core dependencies and configuration.
type App struct {
	Config     *config.Config
	Client     api.Client
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Option is a functional option for configuring the App.
type Option func(*App)

// NewApp creates a new App instance with the given options.
func NewApp(opts ...Option) *App {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}
	if app.HTTPClient == nil {
		app.HTTPClient = http.DefaultClient
	}
	if app.Logger == nil {
		app.Logger = logger.New(logger.ERROR)
	}
	return app
}

// WithConfig sets the application configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithClient sets the Pinboard API client.
func WithClient(client api.Client) Option {
	return func(a *App) {
		a.Client = client
	}
}

// WithHTTPClient sets the client used to fetch bookmarked pages.
func WithHTTPClient(client *http.Client) Option {
	return func(a *App) {
		a.HTTPClient = client
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// RecentCount returns how many posts Recent shows when the user gives no count.
func (a *App) RecentCount() int {
	if a.Config == nil {
		return DefaultRecentCount
	}
	return a.Config.Recent.Count
}

// Recent prints the most recent bookmarks, optionally filtered by tags.
func (a *App) Recent(ctx context.Context, w io.Writer, count int, tagFilter []string) error {
	ep, err := posts.NewRecent(posts.RecentOptions{Tags: tagFilter, Count: &count})
	if err != nil {
		return err
	}
	rs, err := api.Query[v1.PostsList](ctx, a.Client, ep)
	if err != nil {
		return fmt.Errorf("fetching recent posts: %w", err)
	}

	fmt.Fprintf(w, "%d Recent posts for %s at %s\n", count, rs.User, rs.Date.Format(time.RFC3339))
	for _, p := range rs.Posts {
		fmt.Fprintf(w, "- %s\n  %s\n", p.Description, p.Href)
		if p.Tags != "" {
			fmt.Fprintf(w, "  (%s)\n", strings.Join(strings.Fields(p.Tags), ", "))
		}
	}
	return nil
}

// Dates prints the number of bookmarks per day, oldest first.
func (a *App) Dates(ctx context.Context, w io.Writer, tagFilter []string) error {
	ep, err := posts.NewDates(posts.DatesOptions{Tags: tagFilter})
	if err != nil {
		return err
	}
	res, err := api.Query[v1.PostsDates](ctx, a.Client, ep)
	if err != nil {
		return fmt.Errorf("fetching post dates: %w", err)
	}

	fmt.Fprintf(w, "user: %s\n", res.User)
	if res.Tag != "" {
		fmt.Fprintf(w, "tags: %s\n", res.Tag)
	}
	days := make([]api.Date, 0, len(res.Dates))
	for d := range res.Dates {
		days = append(days, d)
	}
	slices.SortFunc(days, func(x, y api.Date) int {
		return strings.Compare(x.String(), y.String())
	})
	fmt.Fprintln(w, "Dates: (Date :: Count)")
	for _, d := range days {
		fmt.Fprintf(w, " * %s :: %d\n", d, res.Dates[d])
	}
	return nil
}

// Suggest prints the popular and recommended tags for a URL.
func (a *App) Suggest(ctx context.Context, w io.Writer, rawURL string) error {
	u, err := parseBookmarkURL(rawURL)
	if err != nil {
		return err
	}
	ep, err := posts.NewSuggest(u)
	if err != nil {
		return err
	}
	res, err := api.Query[v1.PostsSuggest](ctx, a.Client, ep)
	if err != nil {
		return fmt.Errorf("fetching suggestions: %w", err)
	}
	fmt.Fprintf(w, "Popular: %s\n", strings.Join(res.Popular(), ", "))
	fmt.Fprintf(w, "Recommended: %s\n", strings.Join(res.Recommended(), ", "))
	return nil
}

// Tags prints every tag with its bookmark count, most used first.
func (a *App) Tags(ctx context.Context, w io.Writer) error {
	res, err := api.Query[v1.Tags](ctx, a.Client, tags.NewGet())
	if err != nil {
		return fmt.Errorf("fetching tags: %w", err)
	}
	names := make([]string, 0, len(res))
	for name := range res {
		names = append(names, name)
	}
	slices.SortFunc(names, func(x, y string) int {
		if res[x] != res[y] {
			return int(res[y] - res[x])
		}
		return strings.Compare(x, y)
	})
	for _, name := range names {
		fmt.Fprintf(w, "%6d %s\n", res[name], name)
	}
	return nil
}

// Update prints the time of the most recent change to the account.
func (a *App) Update(ctx context.Context, w io.Writer) error {
	res, err := api.Query[v1.PostsUpdate](ctx, a.Client, posts.NewUpdate())
	if err != nil {
		return fmt.Errorf("fetching last update: %w", err)
	}
	fmt.Fprintf(w, "Last update: %s\n", res.UpdateTime.UTC().Format(time.RFC3339))
	return nil
}

// AddRequest describes a bookmark to save.
type AddRequest struct {
	URL         string
	Tags        []string
	Description string
	Extended    string
	Shared      *bool
	ToRead      *bool
	Replace     *bool
	// FetchTitle downloads the page to use its title when Description is empty.
	FetchTitle bool
}

// Add saves a bookmark and prints the result code.
func (a *App) Add(ctx context.Context, w io.Writer, req AddRequest) error {
	u, err := parseBookmarkURL(req.URL)
	if err != nil {
		return err
	}
	description := req.Description
	if description == "" && req.FetchTitle {
		title, err := a.FetchTitle(ctx, u.String())
		if err != nil {
			a.Logger.Warnf("Could not fetch title for %s: %v", u, err)
		} else {
			description = title
		}
	}

	ep, err := posts.NewAdd(u, posts.AddOptions{
		Description: description,
		Extended:    req.Extended,
		Tags:        req.Tags,
		Replace:     req.Replace,
		Shared:      req.Shared,
		ToRead:      req.ToRead,
	})
	if err != nil {
		return err
	}
	a.Logger.Infof("Adding %s as %q", u, ep.Description())
	res, err := api.Query[v1.Result](ctx, a.Client, ep)
	if err != nil {
		return fmt.Errorf("adding bookmark: %w", err)
	}
	fmt.Fprintln(w, res.ResultCode)
	if !res.Done() {
		return fmt.Errorf("adding bookmark: %s", res.ResultCode)
	}
	return nil
}

// Delete removes a bookmark and prints the result code.
func (a *App) Delete(ctx context.Context, w io.Writer, rawURL string) error {
	u, err := parseBookmarkURL(rawURL)
	if err != nil {
		return err
	}
	ep, err := posts.NewDelete(u)
	if err != nil {
		return err
	}
	res, err := api.Query[v1.Result](ctx, a.Client, ep)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	fmt.Fprintln(w, res.ResultCode)
	if !res.Done() {
		return fmt.Errorf("deleting bookmark: %s", res.ResultCode)
	}
	return nil
}

// FetchTitle downloads rawURL and returns the text of its first <title>
// element with whitespace collapsed.
func (a *App) FetchTitle(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			a.Logger.Errorf("Error closing response body: %v", err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", rawURL, err)
	}

	var title string
	var findTitle func(*html.Node) bool
	findTitle = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.Join(strings.Fields(sb.String()), " ")
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if findTitle(c) {
				return true
			}
		}
		return false
	}
	findTitle(doc)

	if title == "" {
		return "", fmt.Errorf("no title in %s", rawURL)
	}
	return title, nil
}

func parseBookmarkURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &api.URLParseError{Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &api.URLParseError{Err: fmt.Errorf("not an absolute URL: %q", rawURL)}
	}
	return u, nil
}
