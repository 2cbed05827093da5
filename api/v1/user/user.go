// Package user contains the v1 account endpoints.
//
// https://pinboard.in/api/#user
package user

import (
	"net/http"

	"pinboard/api"
)

// Secret returns the user's secret RSS key, for viewing private feeds.
//
// https://pinboard.in/api/#user_secret
type Secret struct {
	api.DefaultLimit
}

// NewSecret builds a Secret endpoint.
func NewSecret() *Secret {
	return &Secret{}
}

func (s *Secret) Method() string {
	return http.MethodGet
}

func (s *Secret) Path() string {
	return "v1/user/secret"
}

func (s *Secret) Parameters() *api.QueryParams {
	return nil
}

// APIToken returns the user's API token, for making API calls without a password.
//
// https://pinboard.in/api/#user_api_token
type APIToken struct {
	api.DefaultLimit
}

// NewAPIToken builds an APIToken endpoint.
func NewAPIToken() *APIToken {
	return &APIToken{}
}

func (a *APIToken) Method() string {
	return http.MethodGet
}

func (a *APIToken) Path() string {
	return "v1/user/api_token"
}

func (a *APIToken) Parameters() *api.QueryParams {
	return nil
}
