/*
Package persistent is the root of a family of immutable persistent data structures,
most of them following Chris Okasaki's “Purely Functional Data Structures”.

Immutable persistent data structures can be copied and modified efficiently, leaving
the original unchanged. Every “modification” returns a new version, while all previous
versions remain valid and usable. Versions share most of their memory (structural
sharing), which makes keeping old versions around cheap.

The hard part is to keep the amortized bounds known from mutable structures when old
versions may be used over and over again. The sub-packages solve this in one of two
ways:

■ self-adjusting tree invariants which are re-established top-down on every path copy
(packages heap and rbset),

■ memoized lazy evaluation, where expensive re-organizations are suspended and shared
between all versions, so that they are paid for at most once (packages lazy, queue and
the lazy binomial heap).

Package layout:

    lazy     memoizing suspensions and lazy streams
    list     eager immutable singly-linked lists
    ral      binary random-access lists
    queue    batched, banker's and physicist's queues, banker's deque
    heap     leftist, splay and lazy binomial heaps
    rbset    red-black sets

Every collection is a value type, and its zero value is an empty collection.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
