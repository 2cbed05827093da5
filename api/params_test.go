package api

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormatValue(t *testing.T) {
	u, _ := url.Parse("https://example.com/path?x=1")
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "hello world", want: "hello world"},
		{name: "true", value: true, want: "true"},
		{name: "false", value: false, want: "false"},
		{name: "yes", value: YesNo(true), want: "yes"},
		{name: "no", value: YesNo(false), want: "no"},
		{name: "uint8", value: uint8(77), want: "77"},
		{name: "uint64", value: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "int", value: -3, want: "-3"},
		{name: "float", value: 1.5, want: "1.5"},
		{name: "whole float", value: 3.0, want: "3"},
		{name: "date", value: NewDate(2021, time.March, 4), want: "2021-03-04"},
		{
			name:  "timestamp in another zone",
			value: time.Date(2024, 10, 27, 19, 38, 11, 999, time.FixedZone("CEST", 2*60*60)),
			want:  "2024-10-27T17:38:11Z",
		},
		{name: "url", value: u, want: "https://example.com/path?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, b := range []bool{true, false} {
		got, err := strconv.ParseBool(FormatValue(b))
		if err != nil {
			t.Fatalf("ParseBool failed: %v", err)
		}
		if got != b {
			t.Errorf("Expected %v after round trip, got %v", b, got)
		}
	}
}

func TestQueryParams(t *testing.T) {
	count := 10
	var missing *int
	yes := true
	var params QueryParams
	params.
		Push("url", "http://pinboard.test/").
		PushOpt("count", &count).
		PushOpt("start", missing).
		PushOpt("nothing", nil).
		PushNonEmpty("extended", "").
		PushTags("tag", []string{"one", "two"}).
		PushTags("none", nil).
		PushYesNo("shared", &yes).
		PushYesNo("toread", nil).
		Push("tag", "again")

	want := []Param{
		{Key: "url", Value: "http://pinboard.test/"},
		{Key: "count", Value: "10"},
		{Key: "tag", Value: "one two"},
		{Key: "shared", Value: "yes"},
		{Key: "tag", Value: "again"},
	}
	if diff := cmp.Diff(want, params.Params()); diff != "" {
		t.Errorf("Unexpected params (-want +got):\n%s", diff)
	}

	if got := params.Encode(); got != "url=http%3A%2F%2Fpinboard.test%2F&count=10&tag=one+two&shared=yes&tag=again" {
		t.Errorf("Unexpected encoding: %s", got)
	}
	if v, ok := params.Get("tag"); !ok || v != "one two" {
		t.Errorf("Expected first tag value 'one two', got %q (found %v)", v, ok)
	}
	if _, ok := params.Get("start"); ok {
		t.Error("Expected unset optional parameter to be absent")
	}
}

func TestAddToURL(t *testing.T) {
	u, _ := url.Parse("https://api.pinboard.invalid/v1/posts/get?format=json")
	var params QueryParams
	params.Push("tag", "a&b")
	params.AddToURL(u)
	if u.RawQuery != "format=json&tag=a%26b" {
		t.Errorf("Unexpected query: %s", u.RawQuery)
	}

	var empty *QueryParams
	u2, _ := url.Parse("https://api.pinboard.invalid/v1/tags/get")
	empty.AddToURL(u2)
	if u2.RawQuery != "" {
		t.Errorf("Expected empty query, got %s", u2.RawQuery)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2010-08-09")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d != NewDate(2010, time.August, 9) {
		t.Errorf("Unexpected date %v", d)
	}
	if _, err := ParseDate("2010-13-09"); err == nil {
		t.Error("Expected error for invalid month, got nil")
	}
}

func TestDateValid(t *testing.T) {
	tests := []struct {
		date Date
		want bool
	}{
		{date: NewDate(2024, time.February, 29), want: true},
		{date: NewDate(2023, time.February, 29), want: false},
		{date: NewDate(2024, time.April, 31), want: false},
		{date: NewDate(2024, time.Month(13), 1), want: false},
		{date: NewDate(2024, time.January, 0), want: false},
		{date: Date{}, want: false},
		{date: NewDate(9999, time.December, 31), want: true},
		{date: NewDate(10000, time.January, 1), want: false},
	}
	for _, tt := range tests {
		if got := tt.date.Valid(); got != tt.want {
			t.Errorf("Expected %v.Valid() to be %v, got %v", tt.date, tt.want, got)
		}
	}
}
