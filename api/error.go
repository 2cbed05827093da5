package api

import (
	"encoding/json"
	"fmt"
)

// ClientError wraps a failure reported by the transport: connection, TLS,
// timeout or a truncated response.
type ClientError struct {
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error: %v", e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// URLParseError is returned when the base URL or an endpoint path is not a valid URL.
type URLParseError struct {
	Err error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("failed to parse url: %v", e.Err)
}

func (e *URLParseError) Unwrap() error {
	return e.Err
}

// BodyError is returned when an endpoint cannot produce its request body.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("failed to create form data: %v", e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// JSONError is returned when a successful response is not JSON at all.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("could not parse JSON response: %v", e.Err)
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

// DataTypeError is returned when a successful response is valid JSON that
// does not decode into the requested type.
type DataTypeError struct {
	TypeName string
	Err      error
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("could not parse %s data from JSON: %v", e.TypeName, e.Err)
}

func (e *DataTypeError) Unwrap() error {
	return e.Err
}

// ServerError is returned for a non-2xx response whose body is not JSON.
type ServerError struct {
	StatusCode int
	Data       []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("pinboard internal server error %d", e.StatusCode)
}

// APIError represents an error message reported by the Pinboard API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status: %d)", e.Message, e.StatusCode)
}

// APIObjectError is returned when the API reports an error whose message
// field is not a string. Object holds that field's raw JSON.
type APIObjectError struct {
	StatusCode int
	Object     json.RawMessage
}

func (e *APIObjectError) Error() string {
	return fmt.Sprintf("API error: %s (status: %d)", string(e.Object), e.StatusCode)
}

// APIUnrecognizedError is returned for a non-2xx JSON response without the
// known error message field. Body holds the whole response.
type APIUnrecognizedError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIUnrecognizedError) Error() string {
	return fmt.Sprintf("unrecognized API error (status: %d): %s", e.StatusCode, string(e.Body))
}

// MissingFieldError is returned by endpoint constructors when a required field is not set.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("`%s` must be initialized", e.Field)
}

// ConstraintError is returned by endpoint constructors when a field
// exceeds a bound, e.g. too many tags.
type ConstraintError struct {
	Field       string
	Description string
	Limit       int
	Actual      int
}

func (e *ConstraintError) Error() string {
	return e.Description
}

// InvalidCredentialError is returned when the token cannot be carried in an
// HTTP header. The token itself is never part of the message.
type InvalidCredentialError struct{}

func (e *InvalidCredentialError) Error() string {
	return "invalid credential: token contains characters not allowed in a header value"
}
