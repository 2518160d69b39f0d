package router

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoute marks a dispatch that reached a structurally valid node lacking a handler.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrRouteNotFound marks a dispatch that hit a segment with no matching child.
	ErrRouteNotFound = errors.New("route not found")
)

// A RouteError is a failure belonging to the router's own taxonomy,
// carrying the attempted path for diagnostics.
type RouteError struct {
	// Path is the canonical form of the path the dispatch was attempting.
	Path string

	// Err is one of [ErrRouteNotFound] or [ErrInvalidRoute].
	Err error
}

func (re *RouteError) Error() string {
	return fmt.Sprintf("%s: %s", re.Err, re.Path)
}

func (re *RouteError) Unwrap() error { return re.Err }

// IsTaxonomy asserts whether err belongs to the router's own error taxonomy
// and is therefore eligible for fallback-handler interception.
func IsTaxonomy(err error) bool {
	return errors.Is(err, ErrRouteNotFound) || errors.Is(err, ErrInvalidRoute)
}
