package tree

import "fmt"

// A Tree wraps a root *Node and tracks the active *Node,
// the current traversal position within it.
type Tree struct {
	root   *Node
	active *Node
}

// New constructs a *Tree rooted at root with the active pointer starting there.
//
// New fails with [ErrInvalidChild] when root is nil.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidChild)
	}

	return &Tree{root: root, active: root}, nil
}

// ActiveNode returns the Tree's current traversal position.
//
// ActiveNode is nil only after a failed [Tree.StepToChild] and before the
// next [Tree.ResetActiveNode]; the absent state is never carried between
// dispatches by [router.Router].
func (t *Tree) ActiveNode() *Node { return t.active }

// RootNode returns the Tree's root.
func (t *Tree) RootNode() *Node { return t.root }

// ResetActiveNode returns the active pointer to the root.
func (t *Tree) ResetActiveNode() { t.active = t.root }

// SetRootNode replaces the Tree's root and resets the active pointer to it.
// Nodes reachable only from the old root are no longer contained in the Tree.
//
// SetRootNode fails with [ErrInvalidChild] when root is nil.
func (t *Tree) SetRootNode(root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidChild)
	}

	t.root = root
	t.active = root
	return nil
}

// StepToChild moves the active pointer to the active node's child under key.
//
// On success, StepToChild returns the child and true. When the active node
// is absent or has no child under key, the active pointer is set to the
// absent state and StepToChild returns nil and false. StepToChild mutates
// Tree state; it is not a pure lookup.
func (t *Tree) StepToChild(key string) (*Node, bool) {
	if t.active == nil {
		return nil, false
	}

	child, ok := t.active.Child(key)
	if !ok {
		t.active = nil
		return nil, false
	}

	t.active = child
	return child, true
}

// Contains asserts whether node is the Tree's root or reachable from it.
func (t *Tree) Contains(node *Node) bool {
	if node == nil {
		return false
	}

	if node == t.root {
		return true
	}

	_, err := t.PathKeys(node)
	return err == nil
}

// PathKeys traces node's path from the Tree's root,
// returning the keys in top-to-bottom order, the root's key excluded.
//
// PathKeys fails with [ErrNotInTree] when node is not reachable from the root.
func (t *Tree) PathKeys(node *Node) ([]string, error) {
	return PathKeys(node, t.root)
}

// PathKeys walks node's parent chain upward collecting keys until reaching
// stopAt (exclusive) or, when stopAt is nil, until the chain is exhausted.
// The keys return in top-to-bottom path order, so stepping down from stopAt
// by each key in turn lands back on node.
//
// When node is stopAt, PathKeys returns an empty sequence and no error.
// When stopAt is non-nil and the chain exhausts without reaching it,
// PathKeys fails with [ErrNotInTree].
func PathKeys(node, stopAt *Node) ([]string, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidChild)
	}

	keys := make([]string, 0)
	for cur := node; cur != stopAt; cur = cur.parent {
		// cur is nil only when stopAt is non-nil and was never reached;
		// a nil stopAt ends the loop at the top of an exhausted chain.
		if cur == nil {
			return nil, fmt.Errorf("%w: %q does not lead to %q", ErrNotInTree, node.key, stopAt.key)
		}

		keys = append(keys, cur.key)
	}

	// reverse the bottom-up collection into path order
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}

	return keys, nil
}
