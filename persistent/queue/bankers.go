package queue

import (
	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/fpds/persistent/lazy"
)

// Bankers is a queue with amortized O(1) operations, also under persistent usage.
// It keeps front and rear as lazy streams, with the invariant
//
//     len(front) ≥ len(rear)
//
// When a Snoc or Tail would violate it, the queue rotates: front becomes
// front ++ reverse(rear). The rotation is suspended and shared by every version
// derived from the rotated queue, so the reversal is paid for only once.
type Bankers[T any] struct {
	lenf, lenr int
	f, r       lazy.Stream[T]
}

func makeBankers[T any](lenf int, f lazy.Stream[T], lenr int, r lazy.Stream[T]) Bankers[T] {
	if lenr <= lenf {
		return Bankers[T]{lenf: lenf, f: f, lenr: lenr, r: r}
	}
	tracer().Debugf("bankers queue: rotating %d rear elements into front of length %d", lenr, lenf)
	return Bankers[T]{lenf: lenf + lenr, f: f.Append(r.Reverse())}
}

// IsEmpty is true for a queue without elements.
func (q Bankers[T]) IsEmpty() bool {
	return q.lenf == 0
}

// Len returns the number of elements in q.
func (q Bankers[T]) Len() int {
	return q.lenf + q.lenr
}

// Head returns the first element of q, or persistent.ErrEmptyCollection.
func (q Bankers[T]) Head() (T, error) {
	if q.lenf == 0 {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	x, _, err := q.f.Uncons()
	return x, err
}

// Tail returns q without its first element, or persistent.ErrEmptyCollection.
func (q Bankers[T]) Tail() (Bankers[T], error) {
	if q.lenf == 0 {
		return q, persistent.ErrEmptyCollection
	}
	_, f, err := q.f.Uncons()
	if err != nil {
		return q, err
	}
	return makeBankers(q.lenf-1, f, q.lenr, q.r), nil
}

// Snoc appends x at the end of q.
func (q Bankers[T]) Snoc(x T) Bankers[T] {
	return makeBankers(q.lenf, q.f, q.lenr+1, q.r.Cons(x))
}
