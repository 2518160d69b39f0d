package tree

import (
	"fmt"
	"strings"
)

// A Handler is the opaque callable attached to a [Node].
// waypoint never inspects the arguments or the returned value;
// both belong entirely to the application.
type Handler func(args ...any) (any, error)

// A Node is a named vertex in a routing tree.
//
// A Node owns its children, keyed by each child's own key,
// and keeps a non-owning back-reference to its parent.
// Its key is immutable after construction; its Handler is not.
type Node struct {
	key      string
	handler  Handler
	parent   *Node
	children map[string]*Node

	// order preserves insertion order for stable iteration;
	// replacing a child under an existing key keeps its slot.
	order []string
}

// NewNode constructs a *Node with the trimmed key, applying any options.
//
// NewNode fails with [ErrEmptyKey] when the trimmed key is empty.
func NewNode(key string, opts ...NodeOptFn) (*Node, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyKey, key)
	}

	n := &Node{key: key, children: make(map[string]*Node)}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// AddChild attaches child to the Node, keyed by the child's own key.
//
// AddChild fails with [ErrInvalidChild] when child is nil and with
// [ErrSelfReference] when child is the Node itself. Otherwise, child is
// detached from any previous parent, and any existing child under the same
// key is replaced with its parent link severed.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidChild)
	}

	if child == n {
		return fmt.Errorf("%w: %q cannot be its own child", ErrSelfReference, n.key)
	}

	if child.parent != nil {
		child.parent.detach(child)
	}

	if prior, ok := n.children[child.key]; ok {
		prior.parent = nil
	} else {
		n.order = append(n.order, child.key)
	}

	n.children[child.key] = child
	child.parent = n
	return nil
}

// AddChildren applies [Node.AddChild] to each element in order.
//
// AddChildren aborts on the first element AddChild rejects;
// elements attached before the offending one remain attached.
func (n *Node) AddChildren(children ...*Node) error {
	for _, child := range children {
		if err := n.AddChild(child); err != nil {
			return err
		}
	}

	return nil
}

// Child returns the child attached under key, or false when none is.
func (n *Node) Child(key string) (*Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// HasChild asserts whether a child is attached under key.
func (n *Node) HasChild(key string) bool {
	_, ok := n.children[key]
	return ok
}

// RemoveChild detaches and returns the child attached under key,
// clearing its parent reference.
//
// RemoveChild fails with [ErrChildNotFound] when no child has that key.
// Use [Node.HasChild] to probe for membership without an error.
func (n *Node) RemoveChild(key string) (*Node, error) {
	child, ok := n.children[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrChildNotFound, key)
	}

	n.detach(child)
	return child, nil
}

// SetChild attaches child under key.
//
// SetChild fails with [ErrChildKeyMismatch] when key is not the child's own key;
// otherwise it behaves exactly like [Node.AddChild].
func (n *Node) SetChild(key string, child *Node) error {
	if child != nil && key != child.key {
		return fmt.Errorf("%w: %q != %q", ErrChildKeyMismatch, key, child.key)
	}

	return n.AddChild(child)
}

// SetHandler replaces the Node's Handler; a nil Handler clears it.
func (n *Node) SetHandler(handler Handler) { n.handler = handler }

// Handler returns the Node's Handler, which may be nil.
func (n *Node) Handler() Handler { return n.handler }

// Execute invokes the Node's Handler with the given arguments and returns its result.
//
// Execute fails with [ErrNoHandler] when no Handler is attached.
// Any error the Handler itself returns propagates unchanged.
func (n *Node) Execute(args ...any) (any, error) {
	if n.handler == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoHandler, n.key)
	}

	return n.handler(args...)
}

// Children returns the Node's children in insertion order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.order))
	for _, key := range n.order {
		children = append(children, n.children[key])
	}

	return children
}

// ChildCount returns the number of children attached to the Node.
func (n *Node) ChildCount() int { return len(n.children) }

// IsLeaf asserts whether the Node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Key returns the Node's key.
func (n *Node) Key() string { return n.key }

// Parent returns the Node's parent, which may be nil.
func (n *Node) Parent() *Node { return n.parent }

// String returns the Node's key alone.
func (n *Node) String() string { return n.key }

// detach severs the parent/child relation for a child known to belong to n.
func (n *Node) detach(child *Node) {
	delete(n.children, child.key)
	for i, key := range n.order {
		if key == child.key {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}

	child.parent = nil
}
