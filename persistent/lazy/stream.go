package lazy

import (
	"github.com/npillmayer/fpds/persistent"
)

// Stream is an immutable lazy list. Every cell of a stream is a suspension, which
// is evaluated on first access only.
//
// The zero value is an empty stream, i.e. this is legal:
//
//     s := lazy.Stream[int]{}.Cons(1)
//
type Stream[T any] struct {
	cell *Susp[cell[T]]
}

// cell is either Nil (cons == false) or Cons(head, tail).
type cell[T any] struct {
	cons bool
	head T
	tail Stream[T]
}

func (s Stream[T]) force() cell[T] {
	if s.cell == nil {
		return cell[T]{}
	}
	return s.cell.Force()
}

// FromSlice creates an (already evaluated) stream from a sequence of elements.
func FromSlice[T any](xs ...T) Stream[T] {
	var s Stream[T]
	for i := len(xs) - 1; i >= 0; i-- {
		s = s.Cons(xs[i])
	}
	return s
}

// IsEmpty is true if s has no elements. It forces the first cell of s.
func (s Stream[T]) IsEmpty() bool {
	return !s.force().cons
}

// Cons prepends x to s. Cons does not force s.
func (s Stream[T]) Cons(x T) Stream[T] {
	return Stream[T]{cell: Return(cell[T]{cons: true, head: x, tail: s})}
}

// Uncons splits s into its first element and the remaining stream.
// For an empty stream persistent.ErrEmptyCollection is returned.
func (s Stream[T]) Uncons() (T, Stream[T], error) {
	c := s.force()
	if !c.cons {
		var none T
		return none, s, persistent.ErrEmptyCollection
	}
	return c.head, c.tail, nil
}

// Append concatenates s and t. Creating the result is O(1), every cell of the
// concatenation is computed when it is first accessed.
func (s Stream[T]) Append(t Stream[T]) Stream[T] {
	if s.cell == nil {
		return t
	}
	return Stream[T]{cell: Delay(func() cell[T] {
		c := s.force()
		if !c.cons {
			return t.force()
		}
		return cell[T]{cons: true, head: c.head, tail: c.tail.Append(t)}
	})}
}

// Take returns a stream of the first n elements of s (or all of s, if it is
// shorter). Take is incremental, like Append.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 || s.cell == nil {
		return Stream[T]{}
	}
	return Stream[T]{cell: Delay(func() cell[T] {
		c := s.force()
		if !c.cons {
			return c
		}
		return cell[T]{cons: true, head: c.head, tail: c.tail.Take(n - 1)}
	})}
}

// Drop returns s without its first n elements. The result is monolithic: forcing
// its first cell skips all n elements at once.
func (s Stream[T]) Drop(n int) Stream[T] {
	if n <= 0 || s.cell == nil {
		return s
	}
	return Stream[T]{cell: Delay(func() cell[T] {
		r := s
		for i := 0; i < n; i++ {
			c := r.force()
			if !c.cons {
				return c
			}
			r = c.tail
		}
		return r.force()
	})}
}

// Reverse returns s in reverse order. The result is monolithic: forcing its
// first cell traverses all of s.
func (s Stream[T]) Reverse() Stream[T] {
	if s.cell == nil {
		return s
	}
	return Stream[T]{cell: Delay(func() cell[T] {
		var acc Stream[T]
		n := 0
		for c := s.force(); c.cons; c = c.tail.force() {
			acc = acc.Cons(c.head)
			n++
		}
		tracer().Debugf("stream: reversed %d cells", n)
		return acc.force()
	})}
}

// Len counts the elements of s. It forces all of s.
func (s Stream[T]) Len() int {
	n := 0
	for c := s.force(); c.cons; c = c.tail.force() {
		n++
	}
	return n
}

// ToSlice collects the elements of s. It forces all of s.
func (s Stream[T]) ToSlice() []T {
	var xs []T
	for c := s.force(); c.cons; c = c.tail.force() {
		xs = append(xs, c.head)
	}
	return xs
}
