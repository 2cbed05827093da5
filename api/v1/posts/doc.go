// Package posts contains the v1 bookmark endpoints.
//
// https://pinboard.in/api/#posts
package posts
