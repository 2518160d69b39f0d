package tree

import "fmt"

// A NodeOptFn is a functional option configuring a *Node when constructing a new one.
type NodeOptFn func(*Node) error

// WithHandler sets the Handler the Node begins with.
func WithHandler(handler Handler) NodeOptFn {
	return func(n *Node) error {
		n.handler = handler
		return nil
	}
}

// WithParent attaches the Node under construction to parent,
// exactly as [Node.AddChild] would.
func WithParent(parent *Node) NodeOptFn {
	return func(n *Node) error {
		if parent == nil {
			return fmt.Errorf("%w: nil parent", ErrInvalidChild)
		}

		return parent.AddChild(n)
	}
}
