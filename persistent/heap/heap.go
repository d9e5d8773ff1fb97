package heap

// Heap is the signature of persistent min-heaps with element type T.
// H is the concrete heap type, returned by operations creating a new version.
type Heap[T any, H any] interface {
	IsEmpty() bool
	Len() int
	Insert(T) H
	Merge(H) H
	FindMin() (T, error)
	DeleteMin() (H, error)
}

var _ Heap[int, Leftist[int]] = Leftist[int]{}
var _ Heap[int, Splay[int]] = Splay[int]{}
var _ Heap[int, LazyBinomial[int]] = LazyBinomial[int]{}

// Drain returns the elements of h in ascending order, leaving h unchanged.
//
//     xs := heap.Drain[int](h)
//
func Drain[T any, H Heap[T, H]](h H) []T {
	xs := make([]T, 0, h.Len())
	for !h.IsEmpty() {
		x, err := h.FindMin()
		if err != nil {
			break
		}
		xs = append(xs, x)
		if h, err = h.DeleteMin(); err != nil {
			break
		}
	}
	return xs
}
