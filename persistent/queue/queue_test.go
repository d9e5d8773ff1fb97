package queue

import (
	"errors"
	"testing"

	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	checkFIFO(t, "batched", Batched[int]{})
	checkFIFO(t, "bankers", Bankers[int]{})
	checkFIFO(t, "physicists", Physicists[int]{})
	checkFIFO(t, "deque", Deque[int]{})
}

func TestQueueEmpty(t *testing.T) {
	checkEmpty(t, "batched", Batched[int]{})
	checkEmpty(t, "bankers", Bankers[int]{})
	checkEmpty(t, "physicists", Physicists[int]{})
	checkEmpty(t, "deque", Deque[int]{})
}

func TestQueuePersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	checkPersistence(t, "batched", Batched[int]{})
	checkPersistence(t, "bankers", Bankers[int]{})
	checkPersistence(t, "physicists", Physicists[int]{})
	checkPersistence(t, "deque", Deque[int]{})
}

func TestQueueSnocHead(t *testing.T) {
	q := Bankers[int]{}.Snoc(1).Snoc(2)
	x, err := q.Head()
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	q, err = q.Tail()
	require.NoError(t, err)
	x, err = q.Head()
	require.NoError(t, err)
	assert.Equal(t, 2, x)
}

func TestBankersInvariant(t *testing.T) {
	var q Bankers[int]
	for i := 0; i < 100; i++ {
		q = q.Snoc(i)
		require.GreaterOrEqual(t, q.lenf, q.lenr, "front shorter than rear after %d snocs", i+1)
		if i%3 == 0 {
			q, _ = q.Tail()
			require.GreaterOrEqual(t, q.lenf, q.lenr, "front shorter than rear after tail")
		}
	}
	assert.Equal(t, q.lenf, q.f.Len())
	assert.Equal(t, q.lenr, q.r.Len())
}

func TestPhysicistsHeadDoesNotForce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	q := Physicists[int]{}.Snoc(1).Snoc(2).Snoc(3)
	require.NotNil(t, q.f)
	require.False(t, q.f.IsForced(), "expected rotated front to be suspended")
	x, err := q.Head()
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.False(t, q.f.IsForced(), "expected Head() to not force the front")
	assert.Equal(t, []int{1, 2, 3}, Drain[int](q))
}

// --- Helpers ---------------------------------------------------------------

func checkFIFO[Q Queue[int, Q]](t *testing.T, name string, q Q) {
	const n = 50
	for i := 0; i < n; i++ {
		q = q.Snoc(i)
		require.Equal(t, i+1, q.Len(), "%s: length after %d snocs", name, i+1)
	}
	for i := 0; i < n; i++ {
		x, err := q.Head()
		require.NoError(t, err, name)
		require.Equal(t, i, x, "%s: element #%d", name, i)
		q, err = q.Tail()
		require.NoError(t, err, name)
		require.Equal(t, n-i-1, q.Len(), name)
	}
	assert.True(t, q.IsEmpty(), "%s: expected queue to be empty", name)
}

func checkEmpty[Q Queue[int, Q]](t *testing.T, name string, q Q) {
	assert.True(t, q.IsEmpty(), name)
	assert.Equal(t, 0, q.Len(), name)
	_, err := q.Head()
	assert.True(t, errors.Is(err, persistent.ErrEmptyCollection), "%s: Head() on empty queue: %v", name, err)
	_, err = q.Tail()
	assert.True(t, errors.Is(err, persistent.ErrEmptyCollection), "%s: Tail() on empty queue: %v", name, err)
	assert.Empty(t, Drain[int](q), name)
}

func checkPersistence[Q Queue[int, Q]](t *testing.T, name string, q Q) {
	for i := 1; i <= 5; i++ {
		q = q.Snoc(i)
	}
	q6 := q.Snoc(6)
	q7 := q.Snoc(7)
	t1, err := q.Tail()
	require.NoError(t, err, name)
	t2, err := t1.Tail()
	require.NoError(t, err, name)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Drain[int](q), name)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, Drain[int](q6), name)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7}, Drain[int](q7), name)
	assert.Equal(t, []int{3, 4, 5}, Drain[int](t2), name)
	assert.Equal(t, []int{2, 3, 4, 5, 8}, Drain[int](t1.Snoc(8)), name)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Drain[int](q), "%s: original changed", name)
}
