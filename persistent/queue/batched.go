package queue

import (
	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/fpds/persistent/list"
)

// Batched is a queue made of two eager lists. The rear list is reversed into the
// front whenever the front runs empty.
//
// Operations are amortized O(1) as long as every version is used at most once.
type Batched[T any] struct {
	f, r list.List[T]
}

// makeBatched keeps the invariant: f is empty only if r is empty.
func makeBatched[T any](f, r list.List[T]) Batched[T] {
	if f.IsEmpty() {
		return Batched[T]{f: r.Reverse()}
	}
	return Batched[T]{f: f, r: r}
}

// IsEmpty is true for a queue without elements.
func (q Batched[T]) IsEmpty() bool {
	return q.f.IsEmpty()
}

// Len returns the number of elements in q.
func (q Batched[T]) Len() int {
	return q.f.Len() + q.r.Len()
}

// Head returns the first element of q, or persistent.ErrEmptyCollection.
func (q Batched[T]) Head() (T, error) {
	return q.f.Head()
}

// Tail returns q without its first element, or persistent.ErrEmptyCollection.
func (q Batched[T]) Tail() (Batched[T], error) {
	f, err := q.f.Tail()
	if err != nil {
		return q, persistent.ErrEmptyCollection
	}
	return makeBatched(f, q.r), nil
}

// Snoc appends x at the end of q.
func (q Batched[T]) Snoc(x T) Batched[T] {
	return makeBatched(q.f, q.r.Cons(x))
}
