// Package general contains the v2 endpoints that are not tied to bookmarks.
// The v2 API is still in development and these calls are not rate limited.
package general

import (
	"net/http"

	"pinboard/api"
)

// Hello checks that the API is reachable.
type Hello struct{}

// NewHello builds a Hello endpoint.
func NewHello() *Hello {
	return &Hello{}
}

func (h *Hello) Method() string {
	return http.MethodGet
}

func (h *Hello) Path() string {
	return "v2/hello"
}

func (h *Hello) Parameters() *api.QueryParams {
	return nil
}

// Auth checks that the credentials are accepted.
type Auth struct{}

// NewAuth builds an Auth endpoint.
func NewAuth() *Auth {
	return &Auth{}
}

func (a *Auth) Method() string {
	return http.MethodPost
}

func (a *Auth) Path() string {
	return "v2/auth"
}

func (a *Auth) Parameters() *api.QueryParams {
	return nil
}

// LastUpdate returns the time of the most recent change to the account.
type LastUpdate struct{}

// NewLastUpdate builds a LastUpdate endpoint.
func NewLastUpdate() *LastUpdate {
	return &LastUpdate{}
}

func (l *LastUpdate) Method() string {
	return http.MethodGet
}

func (l *LastUpdate) Path() string {
	return "v2/last_update"
}

func (l *LastUpdate) Parameters() *api.QueryParams {
	return nil
}
