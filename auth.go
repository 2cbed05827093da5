package pinboard

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"pinboard/api"
)

// AuthMode selects how the token travels with a request.
type AuthMode int

const (
	// AuthURL sends the token as the auth_token query parameter.
	AuthURL AuthMode = iota
	// AuthHeader sends the token in the X-Auth-Token header.
	AuthHeader
)

// ParseAuthMode parses "url" or "header".
func ParseAuthMode(s string) (AuthMode, bool) {
	switch s {
	case "url", "":
		return AuthURL, true
	case "header":
		return AuthHeader, true
	}
	return AuthURL, false
}

func (m AuthMode) String() string {
	if m == AuthHeader {
		return "header"
	}
	return "url"
}

const (
	authTokenParam  = "auth_token"
	authTokenHeader = "X-Auth-Token"
	redacted        = "REDACTED"
)

// Auth is a Pinboard API token, as shown on https://pinboard.in/settings/password.
type Auth struct {
	token string
}

// TokenAuth returns the Auth for a personal API token.
func TokenAuth(token string) Auth {
	return Auth{token: token}
}

// AddToURL appends the token to u's query.
func (a Auth) AddToURL(u *url.URL) {
	(&api.QueryParams{}).Push(authTokenParam, a.token).AddToURL(u)
}

// SetHeader stores the token in h. Go has no notion of sensitive header
// values, so Client.Rest never logs request headers.
func (a Auth) SetHeader(h http.Header) error {
	if !httpguts.ValidHeaderFieldValue(a.token) {
		return &api.InvalidCredentialError{}
	}
	h.Set(authTokenHeader, a.token)
	return nil
}

func (a Auth) String() string {
	return "Auth{token: " + redacted + "}"
}

// GoString keeps the token out of %#v.
func (a Auth) GoString() string {
	return a.String()
}

// redactURL returns u as a string with any auth_token value masked.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	if u.RawQuery == "" {
		return u.String()
	}
	clean := *u
	query := clean.Query()
	if _, ok := query[authTokenParam]; !ok {
		return u.String()
	}
	query.Set(authTokenParam, redacted)
	clean.RawQuery = query.Encode()
	return clean.String()
}

// redactError masks the token in the URL carried by transport errors,
// including a *url.Error wrapped by a custom Doer. A wrapped error keeps
// its message with the URL masked and unwraps to the masked *url.Error.
func redactError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	clean := &url.Error{Op: ue.Op, URL: redactRawURL(ue.URL), Err: ue.Err}
	if err == error(ue) {
		return clean
	}
	msg := strings.ReplaceAll(err.Error(), ue.Error(), clean.Error())
	if ue.URL != "" {
		msg = strings.ReplaceAll(msg, ue.URL, clean.URL)
	}
	return &redactedError{msg: msg, err: clean}
}

func redactRawURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return redacted
	}
	return redactURL(parsed)
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string {
	return e.msg
}

func (e *redactedError) Unwrap() error {
	return e.err
}
