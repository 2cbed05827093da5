package api

// Endpoint describes a single API operation: the HTTP method, the path
// relative to the client's base URL and the query parameters.
//
// Endpoints are immutable once built. All validation happens in their
// constructors, so the dispatcher never re-checks domain constraints.
type Endpoint interface {
	Method() string
	Path() string
	Parameters() *QueryParams
}

// BodyEndpoint is implemented by endpoints that send a request body.
// Endpoints without it are sent with an empty body.
type BodyEndpoint interface {
	Endpoint
	Body() (contentType string, body []byte, err error)
}
