package heap

import (
	"github.com/npillmayer/fpds/persistent"
	"golang.org/x/exp/constraints"
)

// Splay is a splay heap. The zero value is an empty heap.
//
// The tree carries no balance information. Instead, Insert and Merge restructure
// the paths they walk, two levels at a time, which keeps the tree balanced on
// average.
type Splay[T constraints.Ordered] struct {
	root *snode[T]
}

type snode[T constraints.Ordered] struct {
	left  *snode[T]
	elem  T
	right *snode[T]
	size  int
}

func (n *snode[T]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func node[T constraints.Ordered](a *snode[T], x T, b *snode[T]) *snode[T] {
	return &snode[T]{left: a, elem: x, right: b, size: a.len() + b.len() + 1}
}

// partition splits t into a tree of elements ≤ pivot and a tree of
// elements > pivot.
func partition[T constraints.Ordered](pivot T, t *snode[T]) (small, big *snode[T]) {
	if t == nil {
		return nil, nil
	}
	if t.elem <= pivot {
		b := t.right
		switch {
		case b == nil:
			return t, nil
		case b.elem <= pivot: // zig-zig
			s, g := partition(pivot, b.right)
			return node(node(t.left, t.elem, b.left), b.elem, s), g
		default: // zig-zag
			s, g := partition(pivot, b.left)
			return node(t.left, t.elem, s), node(g, b.elem, b.right)
		}
	}
	a := t.left
	switch {
	case a == nil:
		return nil, t
	case a.elem <= pivot: // zig-zag
		s, g := partition(pivot, a.right)
		return node(a.left, a.elem, s), node(g, t.elem, t.right)
	default: // zig-zig
		s, g := partition(pivot, a.left)
		return s, node(g, a.elem, node(a.right, t.elem, t.right))
	}
}

func mergeSplay[T constraints.Ordered](a, b *snode[T]) *snode[T] {
	if a == nil {
		return b
	}
	s, g := partition(a.elem, b)
	return node(mergeSplay(a.left, s), a.elem, mergeSplay(a.right, g))
}

// deleteMin removes the leftmost node of t, rotating its two nearest ancestors.
func deleteMin[T constraints.Ordered](t *snode[T]) *snode[T] {
	a := t.left
	switch {
	case a == nil:
		return t.right
	case a.left == nil:
		return node(a.right, t.elem, t.right)
	}
	return node(deleteMin(a.left), a.elem, node(a.right, t.elem, t.right))
}

// IsEmpty is true for a heap without elements.
func (h Splay[T]) IsEmpty() bool {
	return h.root == nil
}

// Len returns the number of elements in h.
func (h Splay[T]) Len() int {
	return h.root.len()
}

// Insert adds x to h.
func (h Splay[T]) Insert(x T) Splay[T] {
	s, g := partition(x, h.root)
	return Splay[T]{root: node(s, x, g)}
}

// Merge returns a heap with the elements of both h and other.
func (h Splay[T]) Merge(other Splay[T]) Splay[T] {
	return Splay[T]{root: mergeSplay(h.root, other.root)}
}

// FindMin returns the smallest element of h, or persistent.ErrEmptyCollection.
func (h Splay[T]) FindMin() (T, error) {
	if h.root == nil {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	t := h.root
	for t.left != nil {
		t = t.left
	}
	return t.elem, nil
}

// DeleteMin returns h without its smallest element, or persistent.ErrEmptyCollection.
func (h Splay[T]) DeleteMin() (Splay[T], error) {
	if h.root == nil {
		return h, persistent.ErrEmptyCollection
	}
	return Splay[T]{root: deleteMin(h.root)}, nil
}
