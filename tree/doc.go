/*
Package tree provides the routing tree waypoint matches URL paths against.

A [Node] is a named vertex owning zero or more uniquely-keyed children and
at most one [Handler]. A parent exclusively owns its children; the parent
back-reference on each child is non-owning and exists only for tracing a
node's path back up the tree. A node has at most one parent at a time:
attaching a node to a new parent detaches it from any previous one, and
attaching a child under a key already in use replaces the prior occupant,
severing that occupant's parent link.

A [Tree] wraps a root Node and tracks one active Node representing the
current traversal position. [*Tree.StepToChild] is the traversal primitive:
it moves the active pointer down to a child, or to an absent state when no
child matches. The active pointer is mutable shared state; a Tree assumes
single-threaded use or external mutual exclusion.
*/
package tree
