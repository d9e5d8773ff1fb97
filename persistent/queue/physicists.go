package queue

import (
	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/fpds/persistent/lazy"
	"github.com/npillmayer/fpds/persistent/list"
)

// Physicists is a queue with amortized O(1) operations and an O(1) worst-case Head.
//
// The front is a suspended eager list. The queue additionally holds w, an already
// evaluated prefix of the front, which is never empty for a non-empty queue. Head
// reads from w and never forces a suspension. Rotation (len(rear) > len(front))
// suspends front ++ reverse(rear), shared by all derived versions.
type Physicists[T any] struct {
	w    list.List[T]
	lenf int
	f    *lazy.Susp[list.List[T]]
	lenr int
	r    list.List[T]
}

func forceFront[T any](f *lazy.Susp[list.List[T]]) list.List[T] {
	if f == nil {
		return list.List[T]{}
	}
	return f.Force()
}

func makePhysicists[T any](w list.List[T], lenf int, f *lazy.Susp[list.List[T]],
	lenr int, r list.List[T]) Physicists[T] {
	//
	if lenr <= lenf {
		return checkPrefix(Physicists[T]{w: w, lenf: lenf, f: f, lenr: lenr, r: r})
	}
	tracer().Debugf("physicists queue: rotating %d rear elements into front of length %d", lenr, lenf)
	front := forceFront(f)
	rotated := lazy.Delay(func() list.List[T] {
		return front.Append(r.Reverse())
	})
	return checkPrefix(Physicists[T]{w: front, lenf: lenf + lenr, f: rotated})
}

// checkPrefix refills an empty working prefix from the front.
func checkPrefix[T any](q Physicists[T]) Physicists[T] {
	if q.w.IsEmpty() {
		q.w = forceFront(q.f)
	}
	return q
}

// IsEmpty is true for a queue without elements.
func (q Physicists[T]) IsEmpty() bool {
	return q.w.IsEmpty()
}

// Len returns the number of elements in q.
func (q Physicists[T]) Len() int {
	return q.lenf + q.lenr
}

// Head returns the first element of q, or persistent.ErrEmptyCollection.
// Head never forces a suspension.
func (q Physicists[T]) Head() (T, error) {
	return q.w.Head()
}

// Tail returns q without its first element, or persistent.ErrEmptyCollection.
func (q Physicists[T]) Tail() (Physicists[T], error) {
	w, err := q.w.Tail()
	if err != nil {
		return q, persistent.ErrEmptyCollection
	}
	f := lazy.Map(q.f, func(front list.List[T]) list.List[T] {
		tail, _ := front.Tail()
		return tail
	})
	return makePhysicists(w, q.lenf-1, f, q.lenr, q.r), nil
}

// Snoc appends x at the end of q.
func (q Physicists[T]) Snoc(x T) Physicists[T] {
	return makePhysicists(q.w, q.lenf, q.f, q.lenr+1, q.r.Cons(x))
}
