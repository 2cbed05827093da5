package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Param is a single encoded query parameter.
type Param struct {
	Key   string
	Value string
}

// QueryParams is an ordered list of query parameters. Keys may repeat and
// every pair is serialized. The zero value is ready to use.
type QueryParams struct {
	params []Param
}

// Push appends key with the encoded form of value.
func (p *QueryParams) Push(key string, value any) *QueryParams {
	p.params = append(p.params, Param{Key: key, Value: FormatValue(value)})
	return p
}

// PushOpt is like Push but skips nil values and nil pointers. Non-nil
// pointers are dereferenced before encoding, except *url.URL.
func (p *QueryParams) PushOpt(key string, value any) *QueryParams {
	if value == nil {
		return p
	}
	if u, ok := value.(*url.URL); ok {
		if u == nil {
			return p
		}
		return p.Push(key, u)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return p
		}
		value = rv.Elem().Interface()
	}
	return p.Push(key, value)
}

// PushNonEmpty appends key only when value is not empty.
func (p *QueryParams) PushNonEmpty(key, value string) *QueryParams {
	if value == "" {
		return p
	}
	return p.Push(key, value)
}

// PushTags appends the tags joined by a single space, or nothing when
// there are no tags.
func (p *QueryParams) PushTags(key string, tags []string) *QueryParams {
	if len(tags) == 0 {
		return p
	}
	return p.Push(key, strings.Join(tags, " "))
}

// PushYesNo appends "yes" or "no" for flags where Pinboard expects those
// literals. Nil is skipped.
func (p *QueryParams) PushYesNo(key string, value *bool) *QueryParams {
	if value == nil {
		return p
	}
	return p.Push(key, YesNo(*value))
}

// Params returns a copy of the parameters in insertion order.
func (p *QueryParams) Params() []Param {
	if p == nil {
		return nil
	}
	out := make([]Param, len(p.params))
	copy(out, p.params)
	return out
}

// Get returns the first value for key.
func (p *QueryParams) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, param := range p.params {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Len returns the number of parameters.
func (p *QueryParams) Len() int {
	if p == nil {
		return 0
	}
	return len(p.params)
}

// Encode serializes the parameters in insertion order.
func (p *QueryParams) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for i, param := range p.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// AddToURL appends the parameters to u's existing query.
func (p *QueryParams) AddToURL(u *url.URL) {
	encoded := p.Encode()
	if encoded == "" {
		return
	}
	if u.RawQuery == "" {
		u.RawQuery = encoded
		return
	}
	u.RawQuery += "&" + encoded
}

// YesNo is a boolean rendered as "yes" or "no".
type YesNo bool

func (yn YesNo) String() string {
	if yn {
		return "yes"
	}
	return "no"
}

// FormatValue returns the canonical query-string form of value. Dates are
// YYYY-MM-DD, timestamps are RFC 3339 in UTC with second precision and
// booleans are "true" or "false". Percent-encoding is left to Encode.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case YesNo:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Date:
		return v.String()
	case time.Time:
		return v.UTC().Format(timestampLayout)
	case *url.URL:
		return v.String()
	case url.URL:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

const timestampLayout = "2006-01-02T15:04:05Z"
