// Package views holds the navigation-scoped chart views: a single-metric view and the combined
// overlay view with its load state.
package views

import "errors"

var (
	ErrMissingStation = errors.New("station parameter is missing")
	ErrStaleResponse  = errors.New("stale forecast response discarded")
)

// State is the lifecycle of one view: uninitialized -> loading -> displaying | failed.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateDisplaying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplaying:
		return "displaying"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
