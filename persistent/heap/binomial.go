package heap

import (
	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/fpds/persistent/lazy"
	"github.com/npillmayer/fpds/persistent/ral"
	"golang.org/x/exp/constraints"
)

/*
Remarks:
--------

- A forest is a list of binomial trees in strictly increasing order of rank. The
  children of a tree of rank r are trees of rank r-1, …, 0, in this order.

- A tree of rank r holds 2^r elements; the root is the smallest of them.

- The forest is kept in a random-access list, as is the list of children of a tree.

*/

// LazyBinomial is a binomial heap with a suspended forest. The zero value is an
// empty heap.
//
// Insert and Merge do not touch the forest; they create a suspension which
// will compute the new forest once it is needed. As suspensions are shared between
// versions of a heap, repeatedly using an old version does not repeat expensive
// carry chains.
type LazyBinomial[T constraints.Ordered] struct {
	forest *lazy.Susp[ral.List[*btree[T]]]
	count  int
}

type btree[T constraints.Ordered] struct {
	rank     int
	root     T
	children ral.List[*btree[T]]
}

func (h LazyBinomial[T]) suspended() *lazy.Susp[ral.List[*btree[T]]] {
	if h.forest == nil {
		return lazy.Return(ral.List[*btree[T]]{})
	}
	return h.forest
}

// IsEmpty is true for a heap without elements.
func (h LazyBinomial[T]) IsEmpty() bool {
	return h.count == 0
}

// Len returns the number of elements in h.
func (h LazyBinomial[T]) Len() int {
	return h.count
}

// Insert adds x to h in amortized O(1).
func (h LazyBinomial[T]) Insert(x T) LazyBinomial[T] {
	t := &btree[T]{root: x}
	return LazyBinomial[T]{
		forest: lazy.Map(h.suspended(), func(ts ral.List[*btree[T]]) ral.List[*btree[T]] {
			return insTree(t, ts)
		}),
		count: h.count + 1,
	}
}

// Merge returns a heap with the elements of both h and other.
func (h LazyBinomial[T]) Merge(other LazyBinomial[T]) LazyBinomial[T] {
	f1, f2 := h.suspended(), other.suspended()
	return LazyBinomial[T]{
		forest: lazy.Delay(func() ral.List[*btree[T]] {
			return mrg(f1.Force(), f2.Force())
		}),
		count: h.count + other.count,
	}
}

// FindMin returns the smallest element of h, or persistent.ErrEmptyCollection.
// FindMin forces the forest of h.
func (h LazyBinomial[T]) FindMin() (T, error) {
	if h.count == 0 {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	t, _ := removeMinTree(h.forest.Force())
	return t.root, nil
}

// DeleteMin returns h without its smallest element, or persistent.ErrEmptyCollection.
// The new forest is computed when it is first needed.
func (h LazyBinomial[T]) DeleteMin() (LazyBinomial[T], error) {
	if h.count == 0 {
		return h, persistent.ErrEmptyCollection
	}
	f := h.forest
	return LazyBinomial[T]{
		forest: lazy.Delay(func() ral.List[*btree[T]] {
			ts := f.Force()
			tracer().Debugf("binomial heap: delete min from forest of %d trees", ts.Len())
			t, rest := removeMinTree(ts)
			return mrg(reverse(t.children), rest)
		}),
		count: h.count - 1,
	}, nil
}

// --- Forests ---------------------------------------------------------------

// link makes the tree with the larger root the leftmost child of the other.
// t1 and t2 must have equal rank.
func link[T constraints.Ordered](t1, t2 *btree[T]) *btree[T] {
	assertThat(t1.rank == t2.rank, "link of trees with ranks %d and %d", t1.rank, t2.rank)
	if t1.root <= t2.root {
		return &btree[T]{rank: t1.rank + 1, root: t1.root, children: t1.children.Cons(t2)}
	}
	return &btree[T]{rank: t1.rank + 1, root: t2.root, children: t2.children.Cons(t1)}
}

// insTree adds t to a forest whose trees have rank ≥ t.rank, carrying as needed.
func insTree[T constraints.Ordered](t *btree[T], ts ral.List[*btree[T]]) ral.List[*btree[T]] {
	for {
		first, rest, err := ts.Uncons()
		if err != nil || t.rank < first.rank {
			return ts.Cons(t)
		}
		t, ts = link(t, first), rest
	}
}

func mrg[T constraints.Ordered](ts1, ts2 ral.List[*btree[T]]) ral.List[*btree[T]] {
	t1, rest1, err := ts1.Uncons()
	if err != nil {
		return ts2
	}
	t2, rest2, err := ts2.Uncons()
	if err != nil {
		return ts1
	}
	switch {
	case t1.rank < t2.rank:
		return mrg(rest1, ts2).Cons(t1)
	case t2.rank < t1.rank:
		return mrg(ts1, rest2).Cons(t2)
	}
	return insTree(link(t1, t2), mrg(rest1, rest2))
}

// removeMinTree splits a non-empty forest into the tree with the smallest root
// and the remaining forest. On ties the tree of lowest rank wins.
func removeMinTree[T constraints.Ordered](ts ral.List[*btree[T]]) (*btree[T], ral.List[*btree[T]]) {
	trees := ts.ToSlice()
	assertThat(len(trees) > 0, "remove min tree from empty forest")
	m := 0
	for i := 1; i < len(trees); i++ {
		if trees[i].root < trees[m].root {
			m = i
		}
	}
	rest := append(trees[:m:m], trees[m+1:]...)
	return trees[m], ral.FromSlice(rest...)
}

func reverse[T any](l ral.List[T]) ral.List[T] {
	var r ral.List[T]
	for x, rest, err := l.Uncons(); err == nil; x, rest, err = rest.Uncons() {
		r = r.Cons(x)
	}
	return r
}
