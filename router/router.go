package router

import (
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/tree"
	"github.com/xy-planning-network/waypoint/urlpath"
)

// A FallbackHandler intercepts a router-taxonomy error raised during a
// dispatch; its return values become the dispatch's return values.
type FallbackHandler func(err error) (any, error)

// A Router matches URL paths against a routing tree and invokes the
// handler of the matched node.
//
// Tree and FallbackHandler are plain fields so callers can swap either
// between dispatches.
type Router struct {
	Tree            *tree.Tree
	FallbackHandler FallbackHandler

	l logger.Logger
}

// New constructs a *Router over t, applying any options.
func New(t *tree.Tree, opts ...RouterOptFn) *Router {
	r := &Router{Tree: t}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve walks the tree by the cursor's segments and returns the matched,
// handler-bearing node without invoking it.
//
// Resolve resets the tree's active node to the root first; it never resets
// the cursor, so callers dispatching repeatedly must supply fresh cursors.
// A segment with no matching child fails with a [*RouteError] wrapping
// [ErrRouteNotFound]; an exhausted cursor on a handler-less node fails with
// a [*RouteError] wrapping [ErrInvalidRoute].
func (r *Router) Resolve(c *urlpath.Cursor) (*tree.Node, error) {
	r.Tree.ResetActiveNode()

	for c.HasNext() {
		seg, _ := c.Next()
		if _, ok := r.Tree.StepToChild(seg); !ok {
			err := &RouteError{Path: c.String(), Err: ErrRouteNotFound}
			r.log("dispatch found no matching child", c, err)
			return nil, err
		}
	}

	node := r.Tree.ActiveNode()
	if node.Handler() == nil {
		err := &RouteError{Path: c.String(), Err: ErrInvalidRoute}
		r.log("dispatch reached a handler-less node", c, err)
		return nil, err
	}

	return node, nil
}

// Dispatch resolves the cursor's path and invokes the matched node's
// handler with no arguments, returning the handler's result.
//
// When a FallbackHandler is set, router-taxonomy errors pass to it and its
// return values become Dispatch's. Errors returned by the route handler
// itself are never intercepted; they propagate to the caller unchanged.
// Dispatch is safely repeatable: it owns resetting the tree's active node,
// while cursor freshness stays the caller's responsibility.
func (r *Router) Dispatch(c *urlpath.Cursor) (any, error) {
	node, err := r.Resolve(c)
	if err != nil {
		if r.FallbackHandler != nil && IsTaxonomy(err) {
			return r.FallbackHandler(err)
		}

		return nil, err
	}

	return node.Execute()
}

// Route is shorthand for dispatching a path string,
// building the fresh cursor on the caller's behalf.
func (r *Router) Route(path string) (any, error) {
	return r.Dispatch(urlpath.New(path))
}

// log emits a debug line for a failed traversal when a logger is configured.
func (r *Router) log(msg string, c *urlpath.Cursor, err error) {
	if r.l == nil {
		return
	}

	rc := &logger.RouteContext{Path: c.String()}
	if active := r.Tree.ActiveNode(); active != nil {
		rc.Node = active.Key()
	}

	r.l.Debug(msg, &logger.LogContext{
		Data:  map[string]any{waypoint.LogKindKey: waypoint.RouterLogKind},
		Error: err,
		Route: rc,
	})
}
