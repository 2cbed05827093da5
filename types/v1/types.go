// Package v1 holds response types for the Pinboard v1 API.
//
// These are convenience shapes. api.Query decodes into any type, so callers
// are free to model only the fields they need.
package v1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pinboard/api"
)

// Count is a number the API may send either bare or quoted.
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", s, err)
		}
		*c = Count(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Count(n)
	return nil
}

type Post struct {
	Href        string    `json:"href" validate:"required"`
	Description string    `json:"description"`
	Extended    string    `json:"extended"`
	Meta        string    `json:"meta"`
	Hash        string    `json:"hash" validate:"required"`
	Time        time.Time `json:"time" validate:"required"`
	Shared      string    `json:"shared"`
	ToRead      string    `json:"toread"`
	Tags        string    `json:"tags"`
}

// Posts is the response of posts/all.
type Posts []Post

// PostsList is the response of posts/recent and posts/get.
type PostsList struct {
	Date  time.Time `json:"date" validate:"required"`
	User  string    `json:"user" validate:"required"`
	Posts []Post    `json:"posts" validate:"required,dive"`
}

// Result is the response of calls that only report an outcome, such as
// posts/add, posts/delete, tags/delete and tags/rename.
type Result struct {
	ResultCode string `json:"result_code" validate:"required"`
}

// Done reports whether the API accepted the call.
func (r Result) Done() bool {
	return r.ResultCode == "done"
}

// PostsDates is the response of posts/dates.
type PostsDates struct {
	User  string             `json:"user" validate:"required"`
	Tag   string             `json:"tag"`
	Dates map[api.Date]Count `json:"dates" validate:"required"`
}

// PostsSuggest is the response of posts/suggest: a list of single-key
// objects, "popular" then "recommended".
type PostsSuggest []map[string][]string

// Popular returns the popular tags.
func (s PostsSuggest) Popular() []string {
	return s.lookup("popular")
}

// Recommended returns the recommended tags.
func (s PostsSuggest) Recommended() []string {
	return s.lookup("recommended")
}

func (s PostsSuggest) lookup(key string) []string {
	var out []string
	for _, entry := range s {
		out = append(out, entry[key]...)
	}
	return out
}

// PostsUpdate is the response of posts/update.
type PostsUpdate struct {
	UpdateTime time.Time `json:"update_time" validate:"required"`
}

// Tags is the response of tags/get: tag name to bookmark count.
type Tags map[string]Count

type Note struct {
	ID        string `json:"id" validate:"required"`
	Hash      string `json:"hash"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Length    Count  `json:"length"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type NoteSummary struct {
	ID        string `json:"id" validate:"required"`
	Hash      string `json:"hash"`
	Title     string `json:"title"`
	Length    Count  `json:"length"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NoteList is the response of notes/list.
type NoteList struct {
	Count int64         `json:"count"`
	Notes []NoteSummary `json:"notes" validate:"dive"`
}

// UserAPIToken is the response of user/api_token.
type UserAPIToken struct {
	Token string `json:"result" validate:"required"`
}

// UserSecret is the response of user/secret.
type UserSecret struct {
	Secret string `json:"result" validate:"required"`
}
