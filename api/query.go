package api

//
// Dispatching endpoints over a Client.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// MaxBodySize is the maximum response body size read from the API. A full
// posts/all export is a few hundred bytes per bookmark.
const MaxBodySize = 1 << 28

// ErrResponseTooLarge is wrapped in a *ClientError when a response body
// exceeds the read limit.
var ErrResponseTooLarge = errors.New("response body too large")

// bodyLimit is MaxBodySize, lowered by tests.
var bodyLimit int64 = MaxBodySize

// Result carries the outcome of an asynchronous query.
type Result[T any] struct {
	Value T
	Err   error
}

// Empty is the placeholder target of Ignore. It accepts any JSON value.
type Empty struct{}

// UnmarshalJSON implements json.Unmarshaler.
func (*Empty) UnmarshalJSON([]byte) error {
	return nil
}

// Query performs one exchange for ep and decodes a successful response into T.
//
// Transport failures are returned as *ClientError. A 2xx body that is not
// JSON yields *JSONError and one that does not fit T yields *DataTypeError.
// Non-2xx responses are classified by apiError.
func Query[T any](ctx context.Context, c Client, ep Endpoint) (T, error) {
	var out T
	status, body, err := exchange(ctx, c, ep)
	if err != nil {
		return out, err
	}
	if !isSuccess(status) {
		return out, apiError(status, body)
	}
	if err := decode(body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Ignore is like Query but only checks that a successful response is
// either empty or valid JSON, then discards it.
func Ignore(ctx context.Context, c Client, ep Endpoint) error {
	status, body, err := exchange(ctx, c, ep)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return apiError(status, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var out Empty
	return decode(body, &out)
}

// QueryAsync runs Query in a new goroutine. The returned channel receives
// exactly one Result. Cancel ctx to abandon the exchange.
func QueryAsync[T any](ctx context.Context, c Client, ep Endpoint) <-chan Result[T] {
	results := make(chan Result[T], 1)
	go func() {
		value, err := Query[T](ctx, c, ep)
		results <- Result[T]{Value: value, Err: err}
	}()
	return results
}

// IgnoreAsync runs Ignore in a new goroutine. The returned channel receives
// exactly one error, nil on success.
func IgnoreAsync(ctx context.Context, c Client, ep Endpoint) <-chan error {
	results := make(chan error, 1)
	go func() {
		results <- Ignore(ctx, c, ep)
	}()
	return results
}

// newRequest builds the HTTP request for ep.
func newRequest(ctx context.Context, c RestClient, ep Endpoint) (*http.Request, error) {
	reqURL, err := c.RestURL(ep.Path())
	if err != nil {
		return nil, err
	}
	ep.Parameters().AddToURL(reqURL)

	var (
		reqBody     io.Reader
		contentType string
	)
	if be, ok := ep.(BodyEndpoint); ok {
		ct, data, err := be.Body()
		if err != nil {
			return nil, &BodyError{Err: err}
		}
		if len(data) > 0 {
			reqBody = bytes.NewReader(data)
			contentType = ct
		}
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method(), reqURL.String(), reqBody)
	if err != nil {
		return nil, &ClientError{Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// exchange sends the request for ep and reads the whole response body.
func exchange(ctx context.Context, c Client, ep Endpoint) (int, []byte, error) {
	req, err := newRequest(ctx, c, ep)
	if err != nil {
		return 0, nil, err
	}
	resp, err := c.Rest(req)
	if err != nil {
		var credErr *InvalidCredentialError
		if errors.As(err, &credErr) {
			return 0, nil, credErr
		}
		return 0, nil, &ClientError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, bodyLimit+1))
	if err != nil {
		return 0, nil, &ClientError{Err: err}
	}
	if int64(len(data)) > bodyLimit {
		return 0, nil, &ClientError{Err: fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, bodyLimit)}
	}
	return resp.StatusCode, data, nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// decode unmarshals body into out, which must be a pointer.
func decode(body []byte, out any) error {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return &JSONError{Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DataTypeError{TypeName: typeName(out), Err: err}
	}
	if err := checkDecoded(out); err != nil {
		return &DataTypeError{TypeName: typeName(out), Err: err}
	}
	return nil
}

func typeName(out any) string {
	return reflect.TypeOf(out).Elem().String()
}

// errorMessageField is where Pinboard puts the error text.
const errorMessageField = "error_message"

// apiError classifies a non-2xx response. The fallback chain is: a string
// message, then a structured message, then the whole unrecognized body.
// Bodies that are not JSON become *ServerError.
func apiError(status int, body []byte) error {
	if !json.Valid(body) {
		return &ServerError{StatusCode: status, Data: bytes.Clone(body)}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return &APIUnrecognizedError{StatusCode: status, Body: json.RawMessage(bytes.Clone(body))}
	}
	field, found := obj[errorMessageField]
	if !found {
		return &APIUnrecognizedError{StatusCode: status, Body: json.RawMessage(bytes.Clone(body))}
	}
	trimmed := bytes.TrimSpace(field)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var msg string
		if err := json.Unmarshal(trimmed, &msg); err == nil {
			return &APIError{StatusCode: status, Message: msg}
		}
	}
	return &APIObjectError{StatusCode: status, Object: json.RawMessage(bytes.Clone(trimmed))}
}
