/*
Package mux binds a waypoint routing tree to net/http.

The package registers [Route]s on a [Mux], growing a tree of [tree.Node]s
one node per path segment. When a request arrives, the Mux walks the tree
by the request path's segments and executes the matched node's handler
with the response writer and request as its arguments. The walk touches no
shared state, so a Mux serves concurrent requests safely.

A [Mux] matches paths only; HTTP methods, headers, and sessions remain the
registered handler's concern. Requests whose path resolves to no
handler-bearing node funnel to the not-found handler.
*/
package mux
