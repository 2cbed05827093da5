// Package api contains the endpoint dispatch core of the Pinboard client.
//
// An Endpoint describes one call: method, relative path and query
// parameters. Concrete endpoints live in the v1 and v2 subpackages and
// validate their inputs when constructed. Query sends an endpoint through a
// Client and decodes the JSON response into a caller-chosen type:
//
//	recent, err := posts.NewRecent(posts.RecentOptions{Count: &count})
//	if err != nil {
//		return err
//	}
//	list, err := api.Query[v1.PostsList](ctx, client, recent)
//
// Every failure is one of the error types in this package and can be
// inspected with errors.As.
package api
