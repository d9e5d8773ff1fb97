package queue

import (
	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/fpds/persistent/lazy"
)

// Deque is a persistent double-ended queue with amortized O(1) operations at
// both ends. Front and rear are lazy streams, kept in balance against each other by
// a constant c:
//
//     len(front) ≤ c·len(rear) + 1   and   len(rear) ≤ c·len(front) + 1
//
// If an operation violates the balance, the longer side is split in half and the
// excess is moved, reversed, to the shorter side.
//
// The zero value is an empty deque with c = 2.
type Deque[T any] struct {
	props
	lenf, lenr int
	f, r       lazy.Stream[T]
}

type props struct {
	balance int
}

// c returns the balance constant, defaulting to 2.
func (p props) c() int {
	if p.balance < 2 {
		return 2
	}
	return p.balance
}

// DequeOption is a type to help initializing deques at creation time.
type DequeOption struct {
	config func(props) props
}

// Balance is an option to set the balance constant c of a deque. The lower bound
// for c is 2, which is also the default. Larger values of c rebalance less often,
// but operations at the shorter end fall back to the other side more often.
//
//     dq := queue.NewDeque[int](queue.Balance(3))
//
func Balance(c int) DequeOption {
	conf := func(p props) props {
		if c < 2 {
			c = 2
		}
		p.balance = c
		return p
	}
	return DequeOption{config: conf}
}

// NewDeque creates an empty deque, configured by options.
func NewDeque[T any](opts ...DequeOption) Deque[T] {
	dq := Deque[T]{}
	for _, option := range opts {
		dq.props = option.config(dq.props)
	}
	return dq
}

// check rebalances front and rear, if necessary.
func (dq Deque[T]) check(lenf int, f lazy.Stream[T], lenr int, r lazy.Stream[T]) Deque[T] {
	c := dq.c()
	switch {
	case lenf > c*lenr+1:
		i := (lenf + lenr) / 2
		j := lenf + lenr - i
		tracer().Debugf("deque: front overloaded (%d|%d), rebalancing to (%d|%d)", lenf, lenr, i, j)
		r = r.Append(f.Drop(i).Reverse())
		f = f.Take(i)
		lenf, lenr = i, j
	case lenr > c*lenf+1:
		j := (lenf + lenr) / 2
		i := lenf + lenr - j
		tracer().Debugf("deque: rear overloaded (%d|%d), rebalancing to (%d|%d)", lenf, lenr, i, j)
		f = f.Append(r.Drop(j).Reverse())
		r = r.Take(j)
		lenf, lenr = i, j
	}
	return Deque[T]{props: dq.props, lenf: lenf, f: f, lenr: lenr, r: r}
}

// IsEmpty is true for a deque without elements.
func (dq Deque[T]) IsEmpty() bool {
	return dq.lenf+dq.lenr == 0
}

// Len returns the number of elements in dq.
func (dq Deque[T]) Len() int {
	return dq.lenf + dq.lenr
}

// --- Front -----------------------------------------------------------------

// Cons prepends x at the front of dq.
func (dq Deque[T]) Cons(x T) Deque[T] {
	return dq.check(dq.lenf+1, dq.f.Cons(x), dq.lenr, dq.r)
}

// Head returns the first element of dq, or persistent.ErrEmptyCollection.
func (dq Deque[T]) Head() (T, error) {
	if dq.lenf == 0 {
		return dq.only()
	}
	x, _, err := dq.f.Uncons()
	return x, err
}

// Tail returns dq without its first element, or persistent.ErrEmptyCollection.
func (dq Deque[T]) Tail() (Deque[T], error) {
	if dq.lenf == 0 {
		if dq.lenr == 0 {
			return dq, persistent.ErrEmptyCollection
		}
		return Deque[T]{props: dq.props}, nil
	}
	_, f, err := dq.f.Uncons()
	if err != nil {
		return dq, err
	}
	return dq.check(dq.lenf-1, f, dq.lenr, dq.r), nil
}

// --- Rear ------------------------------------------------------------------

// Snoc appends x at the end of dq.
func (dq Deque[T]) Snoc(x T) Deque[T] {
	return dq.check(dq.lenf, dq.f, dq.lenr+1, dq.r.Cons(x))
}

// Last returns the last element of dq, or persistent.ErrEmptyCollection.
func (dq Deque[T]) Last() (T, error) {
	if dq.lenr == 0 {
		return dq.only()
	}
	x, _, err := dq.r.Uncons()
	return x, err
}

// Init returns dq without its last element, or persistent.ErrEmptyCollection.
func (dq Deque[T]) Init() (Deque[T], error) {
	if dq.lenr == 0 {
		if dq.lenf == 0 {
			return dq, persistent.ErrEmptyCollection
		}
		return Deque[T]{props: dq.props}, nil
	}
	_, r, err := dq.r.Uncons()
	if err != nil {
		return dq, err
	}
	return dq.check(dq.lenf, dq.f, dq.lenr-1, r), nil
}

// only returns the single element of a deque with one side empty. Balance
// guarantees that the other side then holds at most one element.
func (dq Deque[T]) only() (T, error) {
	var none T
	switch {
	case dq.lenf+dq.lenr == 0:
		return none, persistent.ErrEmptyCollection
	case dq.lenf == 0:
		x, _, err := dq.r.Uncons()
		return x, err
	}
	x, _, err := dq.f.Uncons()
	return x, err
}
