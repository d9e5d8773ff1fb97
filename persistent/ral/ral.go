package ral

import (
	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/persistent"
)

/*
Remarks:
--------

- A digit at level k counts in units of 2^k elements. `size` of a digit is the number
  of elements held by this digit and all higher digits, in units of the digit's level.
  For the first digit this is the length of the list.

- A list never ends with a Zero digit.

- Trees are complete: at level 0 a tree is a single element, at level k>0 it has
  two subtrees of level k-1.

*/

// List is a binary random-access list. The zero value is an empty list.
type List[T any] struct {
	digits *digit[T]
}

type digit[T any] struct {
	one  bool     // One or Zero
	tree *tree[T] // only for One: complete tree of 2^level elements
	next *digit[T]
	size int
}

type tree[T any] struct {
	elem        T
	left, right *tree[T]
}

func leaf[T any](x T) *tree[T] {
	return &tree[T]{elem: x}
}

func (t *tree[T]) value() T {
	return t.elem
}

// FromSlice creates a list of xs, where xs[0] has index 0.
func FromSlice[T any](xs ...T) List[T] {
	var l List[T]
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Cons(xs[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for a list without elements.
func (l List[T]) IsEmpty() bool {
	return l.digits == nil
}

// Len returns the number of elements of l in O(1).
func (l List[T]) Len() int {
	if l.digits == nil {
		return 0
	}
	return l.digits.size
}

// Cons prepends x to l in O(log n) worst case and O(1) amortized.
func (l List[T]) Cons(x T) List[T] {
	return List[T]{digits: consTree(leaf(x), l.digits)}
}

// Head returns the element at index 0, or persistent.ErrEmptyCollection.
func (l List[T]) Head() (T, error) {
	if l.digits == nil {
		var none T
		return none, persistent.ErrEmptyCollection
	}
	t, _ := unconsTree(l.digits)
	return t.elem, nil
}

// Tail returns l without its first element, or persistent.ErrEmptyCollection.
func (l List[T]) Tail() (List[T], error) {
	_, tail, err := l.Uncons()
	return tail, err
}

// Uncons splits l into its first element and the remaining list.
func (l List[T]) Uncons() (T, List[T], error) {
	if l.digits == nil {
		var none T
		return none, l, persistent.ErrEmptyCollection
	}
	t, rest := unconsTree(l.digits)
	return t.elem, List[T]{digits: rest}, nil
}

// Lookup returns the element at index i.
func (l List[T]) Lookup(i int) (T, error) {
	if i < 0 || i >= l.Len() {
		var none T
		return none, persistent.IndexError(i, l.Len())
	}
	return lookupTree(i, l.digits).elem, nil
}

// Update returns a copy of l with the element at index i replaced by value.
func (l List[T]) Update(i int, value T) (List[T], error) {
	return l.Adjust(i, func(T) T { return value })
}

// Adjust returns a copy of l with the element at index i replaced by f(l[i]).
func (l List[T]) Adjust(i int, f func(T) T) (List[T], error) {
	if i < 0 || i >= l.Len() {
		return l, persistent.IndexError(i, l.Len())
	}
	tracer().Debugf("ral: update at %d of %d", i, l.Len())
	replace := fpds.Compose(fpds.Compose((*tree[T]).value, f), leaf[T])
	return List[T]{digits: update(i, replace, l.digits)}, nil
}

// ToSlice collects the elements of l in index order.
func (l List[T]) ToSlice() []T {
	xs := make([]T, 0, l.Len())
	for d := l.digits; d != nil; d = d.next {
		if d.one {
			xs = d.tree.appendLeafs(xs)
		}
	}
	return xs
}

// --- Digits ----------------------------------------------------------------

// consTree increments the numeral d by a tree of d's level.
func consTree[T any](t *tree[T], d *digit[T]) *digit[T] {
	switch {
	case d == nil:
		return &digit[T]{one: true, tree: t, size: 1}
	case !d.one:
		return &digit[T]{one: true, tree: t, next: d.next, size: d.size + 1}
	}
	carry := &tree[T]{left: t, right: d.tree}
	return &digit[T]{next: consTree(carry, d.next), size: d.size + 1}
}

// unconsTree decrements the numeral d, returning the tree borrowed.
func unconsTree[T any](d *digit[T]) (*tree[T], *digit[T]) {
	assertThat(d != nil, "attempt to uncons from empty digit list")
	if d.one {
		if d.next == nil {
			return d.tree, nil
		}
		return d.tree, &digit[T]{next: d.next, size: d.size - 1}
	}
	p, rest := unconsTree(d.next)
	assertThat(p.left != nil && p.right != nil, "tree of level > 0 without children")
	return p.left, &digit[T]{one: true, tree: p.right, next: rest, size: d.size - 1}
}

func lookupTree[T any](i int, d *digit[T]) *tree[T] {
	assertThat(d != nil, "index beyond last digit")
	if d.one {
		if i == 0 {
			return d.tree
		}
		return lookupZero(i-1, d.next)
	}
	return lookupZero(i, d.next)
}

// lookupZero looks up index i of a Zero digit followed by next.
func lookupZero[T any](i int, next *digit[T]) *tree[T] {
	p := lookupTree(i/2, next)
	if i%2 == 0 {
		return p.left
	}
	return p.right
}

func update[T any](i int, f func(*tree[T]) *tree[T], d *digit[T]) *digit[T] {
	assertThat(d != nil, "index beyond last digit")
	if d.one {
		if i == 0 {
			return &digit[T]{one: true, tree: f(d.tree), next: d.next, size: d.size}
		}
		return &digit[T]{one: true, tree: d.tree, next: updateZero(i-1, f, d.next), size: d.size}
	}
	return &digit[T]{next: updateZero(i, f, d.next), size: d.size}
}

// updateZero updates index i of a Zero digit followed by next and returns the new next.
func updateZero[T any](i int, f func(*tree[T]) *tree[T], next *digit[T]) *digit[T] {
	even := i%2 == 0
	return update(i/2, func(p *tree[T]) *tree[T] {
		if even {
			return &tree[T]{left: f(p.left), right: p.right}
		}
		return &tree[T]{left: p.left, right: f(p.right)}
	}, next)
}

func (t *tree[T]) appendLeafs(xs []T) []T {
	if t.left == nil {
		return append(xs, t.elem)
	}
	return t.right.appendLeafs(t.left.appendLeafs(xs))
}
