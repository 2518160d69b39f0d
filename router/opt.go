package router

import "github.com/xy-planning-network/waypoint/logger"

// A RouterOptFn is a functional option configuring a *Router when constructing a new one.
type RouterOptFn func(*Router)

// WithLogger sets the logger.Logger the Router emits dispatch diagnostics with.
func WithLogger(l logger.Logger) RouterOptFn {
	return func(r *Router) {
		r.l = l
	}
}
