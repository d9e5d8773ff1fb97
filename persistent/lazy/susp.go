package lazy

import (
	"sync"
	"sync/atomic"

	"github.com/npillmayer/fpds"
)

// Susp is a memoizing suspension: a delayed computation of a value of type T.
// The computation is run by the first call to Force, all later calls return
// the cached result.
//
// Suspensions are shared by reference between versions of a persistent structure
// and must not be copied after first use.
type Susp[T any] struct {
	once   sync.Once
	thunk  func() T
	value  T
	forced atomic.Bool
}

// Delay suspends the computation f.
func Delay[T any](f func() T) *Susp[T] {
	return &Susp[T]{thunk: f}
}

// Return creates an already evaluated suspension holding value.
func Return[T any](value T) *Susp[T] {
	s := &Susp[T]{value: value}
	s.once.Do(func() {})
	s.forced.Store(true)
	return s
}

// Force runs the suspended computation, if it has not been run before, and
// returns its result.
func (s *Susp[T]) Force() T {
	s.once.Do(func() {
		s.value = s.thunk()
		s.thunk = nil // release everything the computation captured
		s.forced.Store(true)
	})
	return s.value
}

// IsForced is true if the value of s has already been computed.
func (s *Susp[T]) IsForced() bool {
	return s.forced.Load()
}

// Map returns a suspension of f applied to the value of s.
// s is not forced before the result is forced.
func Map[T, S any](s *Susp[T], f func(T) S) *Susp[S] {
	return Delay(fpds.Then(s.Force, f))
}
