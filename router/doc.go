/*
Package router dispatches URL paths against a routing [tree.Tree].

A [Router] drives a [urlpath.Cursor] and a tree in lock-step: each consumed
segment steps the tree's active node to the matching child. Traversal ends
when the cursor is exhausted; the active node's handler is then invoked with
no arguments and its result returned to the caller.

Two failures belong to the router itself: [ErrRouteNotFound], when a segment
has no matching child, and [ErrInvalidRoute], when traversal lands on a node
without a handler. Both arrive wrapped in a [*RouteError] carrying the
attempted path. When a [FallbackHandler] is set on the Router, those two -
and only those two - are passed to it instead of propagating; errors a route
handler itself returns always reach the caller unchanged.

A Router resets the tree's active node at the start of every dispatch but
never resets the cursor; callers supply a fresh cursor per call. Repeat
dispatches with equivalent fresh cursors against the same tree are therefore
idempotent with respect to tree structure.
*/
package router
