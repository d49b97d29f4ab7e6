package walker

import (
	"fmt"

	"github.com/jfeld/xsdtools/xsdtree"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// WalkContext provides contextual information about the current node.
type WalkContext struct {
	// Path is the node's absolute path. Equals node.Path when the forest
	// has been annotated by xsdtree.ComputePaths; empty otherwise.
	Path string

	// Depth is the node's depth below its root; roots have depth 0.
	Depth int

	// Parent is the node's parent, nil for roots.
	Parent *xsdtree.ElementNode
}

// NodeHandler is called for every element node visited, in depth-first
// declaration order.
type NodeHandler func(wc *WalkContext, node *xsdtree.ElementNode) Action

// Option configures a Walker.
type Option func(*Walker)

// WithNodeHandler sets the handler called for each node.
func WithNodeHandler(fn NodeHandler) Option {
	return func(w *Walker) {
		w.onNode = fn
	}
}

// Walker traverses element forests depth-first in declaration order.
type Walker struct {
	onNode NodeHandler
}

// New creates a Walker with the given options.
func New(opts ...Option) *Walker {
	w := &Walker{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk traverses the forest with the given options.
// It is a convenience wrapper around New(opts...).Walk(roots).
func Walk(roots []*xsdtree.ElementNode, opts ...Option) error {
	return New(opts...).Walk(roots)
}

// Walk traverses the forest depth-first. Children are visited in the order
// they were appended during tree construction, so traversal order matches
// path order.
func (w *Walker) Walk(roots []*xsdtree.ElementNode) error {
	if w.onNode == nil {
		return fmt.Errorf("walker: no node handler configured")
	}
	for _, root := range roots {
		if root == nil {
			continue
		}
		if !w.walkNode(root, nil, 0) {
			return nil
		}
	}
	return nil
}

// walkNode visits one node and its subtree. It returns false when the walk
// should stop entirely.
func (w *Walker) walkNode(node *xsdtree.ElementNode, parent *xsdtree.ElementNode, depth int) bool {
	wc := &WalkContext{
		Path:   node.Path,
		Depth:  depth,
		Parent: parent,
	}
	switch w.onNode(wc, node) {
	case Stop:
		return false
	case SkipChildren:
		return true
	}
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if !w.walkNode(child, node, depth+1) {
			return false
		}
	}
	return true
}
