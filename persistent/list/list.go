package list

import (
	"github.com/npillmayer/fpds/maybe"
	"github.com/npillmayer/fpds/persistent"
)

// List is an immutable singly-linked list. The zero value is an empty list.
type List[T any] struct {
	first *cons[T]
}

type cons[T any] struct {
	head   T
	tail   *cons[T]
	length int
}

// FromSlice creates a list of xs, with xs[0] at the head.
func FromSlice[T any](xs ...T) List[T] {
	var l List[T]
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Cons(xs[i])
	}
	return l
}

// IsEmpty is true for a list without elements.
func (l List[T]) IsEmpty() bool {
	return l.first == nil
}

// Len returns the number of elements of l in O(1).
func (l List[T]) Len() int {
	if l.first == nil {
		return 0
	}
	return l.first.length
}

// Cons prepends x to l.
func (l List[T]) Cons(x T) List[T] {
	return List[T]{first: &cons[T]{head: x, tail: l.first, length: l.Len() + 1}}
}

// Head returns the first element of l, or persistent.ErrEmptyCollection.
func (l List[T]) Head() (T, error) {
	if l.first == nil {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	return l.first.head, nil
}

// Tail returns l without its first element, or persistent.ErrEmptyCollection.
func (l List[T]) Tail() (List[T], error) {
	if l.first == nil {
		return l, persistent.ErrEmptyCollection
	}
	return List[T]{first: l.first.tail}, nil
}

// Append returns the concatenation of l and other. The cells of l are copied,
// other is shared.
func (l List[T]) Append(other List[T]) List[T] {
	if l.first == nil {
		return other
	}
	if other.first == nil {
		return l
	}
	xs, r := l.ToSlice(), other
	for i := len(xs) - 1; i >= 0; i-- {
		r = r.Cons(xs[i])
	}
	return r
}

// Reverse returns the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.first; c != nil; c = c.tail {
		r = r.Cons(c.head)
	}
	if l.Len() > 64 {
		tracer().Debugf("list: reversed %d elements", l.Len())
	}
	return r
}

// Find returns the first element of l satisfying pred.
func (l List[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for c := l.first; c != nil; c = c.tail {
		if pred(c.head) {
			return maybe.Just(c.head)
		}
	}
	return maybe.Nothing[T]()
}

// Any is true if at least one element of l satisfies pred.
func (l List[T]) Any(pred func(T) bool) bool {
	_, found := l.Find(pred).Get()
	return found
}

// ToSlice collects the elements of l, head first.
func (l List[T]) ToSlice() []T {
	xs := make([]T, 0, l.Len())
	for c := l.first; c != nil; c = c.tail {
		xs = append(xs, c.head)
	}
	return xs
}
