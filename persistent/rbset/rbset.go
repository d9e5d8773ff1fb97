package rbset

import (
	"github.com/npillmayer/fpds/maybe"
	"golang.org/x/exp/constraints"
)

type color bool

const (
	black color = false
	red   color = true
)

// Set is an immutable set of ordered elements. The zero value is an empty set.
type Set[T constraints.Ordered] struct {
	root *node[T]
}

type node[T constraints.Ordered] struct {
	color color
	left  *node[T]
	elem  T
	right *node[T]
	size  int
}

func (n *node[T]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[T]) isRed() bool {
	return n != nil && n.color == red
}

func mk[T constraints.Ordered](c color, a *node[T], x T, b *node[T]) *node[T] {
	return &node[T]{color: c, left: a, elem: x, right: b, size: a.len() + b.len() + 1}
}

// FromSlice creates a set of the elements of xs, dropping duplicates.
func FromSlice[T constraints.Ordered](xs ...T) Set[T] {
	var s Set[T]
	for _, x := range xs {
		s = s.Insert(x)
	}
	return s
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for a set without elements.
func (s Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Len returns the number of elements of s in O(1).
func (s Set[T]) Len() int {
	return s.root.len()
}

// IsMember is true if x is an element of s.
func (s Set[T]) IsMember(x T) bool {
	n := s.root
	for n != nil {
		switch {
		case x < n.elem:
			n = n.left
		case n.elem < x:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert returns a set containing the elements of s and x. If x already is an
// element of s, s itself is returned.
func (s Set[T]) Insert(x T) Set[T] {
	if s.IsMember(x) {
		return s
	}
	root := ins(x, s.root)
	if root.color == red {
		root = mk(black, root.left, root.elem, root.right)
	}
	return Set[T]{root: root}
}

// Min returns the smallest element of s, if any.
func (s Set[T]) Min() maybe.Maybe[T] {
	if s.root == nil {
		return maybe.Nothing[T]()
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.elem)
}

// Max returns the largest element of s, if any.
func (s Set[T]) Max() maybe.Maybe[T] {
	if s.root == nil {
		return maybe.Nothing[T]()
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.elem)
}

// Elements returns the elements of s in ascending order.
func (s Set[T]) Elements() []T {
	xs := make([]T, 0, s.Len())
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		xs = append(xs, x)
	}
	return xs
}

// --- Insertion -------------------------------------------------------------

// ins inserts x as a red node. x must not be an element of n.
func ins[T constraints.Ordered](x T, n *node[T]) *node[T] {
	if n == nil {
		return mk(red, nil, x, nil)
	}
	if x < n.elem {
		return lbalance(n.color, ins(x, n.left), n.elem, n.right)
	}
	return rbalance(n.color, n.left, n.elem, ins(x, n.right))
}

// lbalance repairs a red-red violation in the left subtree of a black node.
func lbalance[T constraints.Ordered](c color, l *node[T], z T, d *node[T]) *node[T] {
	if c == black && l.isRed() {
		if l.left.isRed() {
			ll := l.left
			tracer().Debugf("rbset: rotate left-left at %v", z)
			return mk(red, mk(black, ll.left, ll.elem, ll.right), l.elem, mk(black, l.right, z, d))
		}
		if l.right.isRed() {
			lr := l.right
			tracer().Debugf("rbset: rotate left-right at %v", z)
			return mk(red, mk(black, l.left, l.elem, lr.left), lr.elem, mk(black, lr.right, z, d))
		}
	}
	return mk(c, l, z, d)
}

// rbalance repairs a red-red violation in the right subtree of a black node.
func rbalance[T constraints.Ordered](c color, a *node[T], x T, r *node[T]) *node[T] {
	if c == black && r.isRed() {
		if r.left.isRed() {
			rl := r.left
			tracer().Debugf("rbset: rotate right-left at %v", x)
			return mk(red, mk(black, a, x, rl.left), rl.elem, mk(black, rl.right, r.elem, r.right))
		}
		if r.right.isRed() {
			rr := r.right
			tracer().Debugf("rbset: rotate right-right at %v", x)
			return mk(red, mk(black, a, x, r.left), r.elem, mk(black, rr.left, rr.elem, rr.right))
		}
	}
	return mk(c, a, x, r)
}

// --- Iterator --------------------------------------------------------------

// Iterator enumerates the elements of a set in ascending order.
type Iterator[T constraints.Ordered] struct {
	stack []*node[T]
}

// Iterator returns an iterator positioned before the smallest element of s.
func (s Set[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeft(s.root)
	return it
}

func (it *Iterator[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next returns the next element, or false if the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n.elem, true
}
