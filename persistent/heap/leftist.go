package heap

import (
	"github.com/npillmayer/fpds/persistent"
	"golang.org/x/exp/constraints"
)

// Leftist is a leftist heap. The zero value is an empty heap.
type Leftist[T constraints.Ordered] struct {
	root *lnode[T]
}

// lnode is an immutable node. rank is the length of the right spine.
type lnode[T constraints.Ordered] struct {
	elem        T
	rank, size  int
	left, right *lnode[T]
}

func rank[T constraints.Ordered](n *lnode[T]) int {
	if n == nil {
		return 0
	}
	return n.rank
}

func (n *lnode[T]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

// makeT creates a node with children a and b, swapping them if necessary to
// keep the leftist property.
func makeT[T constraints.Ordered](x T, a, b *lnode[T]) *lnode[T] {
	if rank(a) < rank(b) {
		a, b = b, a
	}
	return &lnode[T]{elem: x, rank: rank(b) + 1, size: a.len() + b.len() + 1, left: a, right: b}
}

func mergeLeftist[T constraints.Ordered](h1, h2 *lnode[T]) *lnode[T] {
	if h1 == nil {
		return h2
	}
	if h2 == nil {
		return h1
	}
	if h1.elem <= h2.elem {
		return makeT(h1.elem, h1.left, mergeLeftist(h1.right, h2))
	}
	return makeT(h2.elem, h2.left, mergeLeftist(h1, h2.right))
}

// IsEmpty is true for a heap without elements.
func (h Leftist[T]) IsEmpty() bool {
	return h.root == nil
}

// Len returns the number of elements in h.
func (h Leftist[T]) Len() int {
	return h.root.len()
}

// Insert adds x to h in O(log n).
func (h Leftist[T]) Insert(x T) Leftist[T] {
	single := &lnode[T]{elem: x, rank: 1, size: 1}
	return Leftist[T]{root: mergeLeftist(single, h.root)}
}

// Merge returns a heap with the elements of both h and other.
func (h Leftist[T]) Merge(other Leftist[T]) Leftist[T] {
	return Leftist[T]{root: mergeLeftist(h.root, other.root)}
}

// FindMin returns the smallest element of h, or persistent.ErrEmptyCollection.
func (h Leftist[T]) FindMin() (T, error) {
	if h.root == nil {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	return h.root.elem, nil
}

// DeleteMin returns h without its smallest element, or persistent.ErrEmptyCollection.
func (h Leftist[T]) DeleteMin() (Leftist[T], error) {
	if h.root == nil {
		return h, persistent.ErrEmptyCollection
	}
	return Leftist[T]{root: mergeLeftist(h.root.left, h.root.right)}, nil
}
