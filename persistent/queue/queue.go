package queue

// Queue is the signature of persistent FIFO queues with element type T.
// Q is the concrete queue type, returned by operations creating a new version.
type Queue[T any, Q any] interface {
	IsEmpty() bool
	Len() int
	Head() (T, error)
	Tail() (Q, error)
	Snoc(T) Q
}

// DoubleEnded is the signature of persistent double-ended queues.
type DoubleEnded[T any, Q any] interface {
	Queue[T, Q]
	Cons(T) Q
	Last() (T, error)
	Init() (Q, error)
}

var _ Queue[int, Batched[int]] = Batched[int]{}
var _ Queue[int, Bankers[int]] = Bankers[int]{}
var _ Queue[int, Physicists[int]] = Physicists[int]{}
var _ DoubleEnded[int, Deque[int]] = Deque[int]{}

// Drain returns the elements of q in FIFO order, leaving q unchanged.
//
//     xs := queue.Drain[int](q)
//
func Drain[T any, Q Queue[T, Q]](q Q) []T {
	xs := make([]T, 0, q.Len())
	for !q.IsEmpty() {
		x, err := q.Head()
		if err != nil {
			break
		}
		xs = append(xs, x)
		if q, err = q.Tail(); err != nil {
			break
		}
	}
	return xs
}
