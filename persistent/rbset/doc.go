/*
Package rbset implements a persistent set of ordered elements as a red-black tree.

Red-black trees are binary search trees with every node colored either red or
black. They keep balanced by two rules:

■ no red node has a red child, and

■ every path from the root to an empty subtree contains the same number of black
nodes.

Insert rebalances on the way back from the insertion point by rewriting the four
possible shapes of a red node with a red child below a black node. The root is
colored black after every insertion. Insert and IsMember run in O(log n).

Elements are enumerated in ascending order:

    s := rbset.Set[int]{}.Insert(3).Insert(1).Insert(2)
    it := s.Iterator()
    for x, ok := it.Next(); ok; x, ok = it.Next() {
        fmt.Println(x)   // 1 2 3
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.rbset'.
func tracer() tracing.Trace {
	return tracing.Select("fp.rbset")
}
