/*
Package list implements an eager immutable singly-linked list.

Lists are the plain building block the lazy queues are made of. Cons, Head and Tail
are O(1); Append copies its receiver and shares the argument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}
