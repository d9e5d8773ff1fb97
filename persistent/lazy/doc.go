/*
Package lazy implements memoizing suspensions and lazy streams.

A suspension (Susp) is a delayed computation which is evaluated at most once. The result
of the first call to Force is cached and returned by every subsequent call, no matter
how many versions of a persistent structure share the suspension. This is what makes
amortized bounds survive persistence: an expensive re-organization, once paid for by
one version, is free for every other version holding the same suspension.

A Stream is a lazy list built from suspensions. Appending or taking a prefix of a
stream is O(1) until the result is traversed:

    s := lazy.FromSlice(1, 2, 3)
    t := s.Append(s.Reverse())   // nothing evaluated so far
    xs := t.ToSlice()            // [1 2 3 3 2 1]

Suspensions are safe to force from several goroutines; the computation still runs
exactly once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lazy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.lazy'.
func tracer() tracing.Trace {
	return tracing.Select("fp.lazy")
}
