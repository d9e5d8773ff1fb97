/*
Package heap implements persistent priority queues for ordered element types.

Three implementations share the Heap contract:

■ Leftist is a leftist heap. Every node stores its rank, the length of its right
spine, and a node's left child never has a smaller rank than its right child. The
right spine therefore has at most log(n+1) nodes, and Merge walks only right spines,
which gives worst-case O(log n) for Insert, Merge and DeleteMin.

■ Splay is a splay heap, a binary search tree without any balance information.
Insert and Merge partition the tree around a pivot, restructuring two levels at a
time. All operations are amortized O(log n).

■ LazyBinomial is a binomial heap whose forest of trees is held in a suspension.
Insert is amortized O(1), Merge and DeleteMin are amortized O(log n), even if old
versions of a heap are used again.

FindMin and DeleteMin on an empty heap report persistent.ErrEmptyCollection.

    h := heap.Leftist[int]{}.Insert(3).Insert(1).Insert(2)
    m, _ := h.FindMin()       // m = 1
    xs := heap.Drain[int](h)  // xs = [1 2 3]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package heap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.heap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.heap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("heap: "+msg, msgargs...)
		panic(msg)
	}
}
