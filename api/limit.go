package api

import "time"

// DefaultSecsBetweenCalls is the interval Pinboard asks clients to keep
// between calls to most endpoints.
//
// https://pinboard.in/api#limits
const DefaultSecsBetweenCalls = 3

// Limiter is implemented by endpoints that advertise a rate hint. The hint
// is advisory: nothing in this module waits or throttles.
type Limiter interface {
	SecsBetweenCalls() int
}

// DefaultLimit can be embedded in an endpoint to advertise the default rate hint.
type DefaultLimit struct{}

// SecsBetweenCalls implements Limiter.
func (DefaultLimit) SecsBetweenCalls() int {
	return DefaultSecsBetweenCalls
}

// MinInterval returns the advertised minimum interval between calls to ep,
// or zero when the endpoint does not advertise one.
func MinInterval(ep Endpoint) time.Duration {
	l, ok := ep.(Limiter)
	if !ok {
		return 0
	}
	return time.Duration(l.SecsBetweenCalls()) * time.Second
}
