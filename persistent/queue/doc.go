/*
Package queue implements persistent FIFO queues and a double-ended queue.

All queues keep their elements in two sequences, a front and a reversed rear, and
move elements from the rear to the front once the rear grows too long. They differ in
how the cost of this reversal is accounted for:

■ Batched is the plain two-list queue. Its amortized O(1) bound breaks down if an old
version is used repeatedly, because each use pays for the same reversal again.

■ Bankers keeps front and rear as lazy streams and rotates as soon as the rear gets
longer than the front. The reversal is a suspension shared by all versions, so it is
paid for at most once (amortized O(1), also under persistence).

■ Physicists keeps the front as a suspended eager list plus an evaluated prefix of it,
so that Head never forces anything.

■ Deque is the banker's double-ended queue, balancing front and rear against each
other by a constant factor (see Balance).

Every queue type is a value type and its zero value is an empty queue:

    q := queue.Bankers[int]{}.Snoc(1).Snoc(2)
    x, _ := q.Head()   // x = 1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.queue'.
func tracer() tracing.Trace {
	return tracing.Select("fp.queue")
}
