/*
Package ral implements binary random-access lists.

A binary random-access list is a sequence with O(1) Cons and O(log n) indexed Lookup
and Update. Its shape mirrors the binary numeral of its length: the list is a chain
of digits, where the digit at position k is either Zero or One, and a One digit holds
a complete binary tree of 2^k elements. Consing onto the list is incrementing the
numeral; a carry pairs two trees of equal size into a tree one level higher.

In languages with polymorphic recursion this is usually written as a list of elements
whose tail is a list of pairs of elements. Go's generics cannot instantiate
List[Pair[T,T]] from within List[T], therefore every digit stores a tree node of one
homogeneous type, and the level of a tree is implied by the position of its digit.

Lookup and Update report persistent.ErrIndexOutOfRange for an index outside of
[0, Len()).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ral

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.ral'.
func tracer() tracing.Trace {
	return tracing.Select("fp.ral")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ral: "+msg, msgargs...)
		panic(msg)
	}
}
