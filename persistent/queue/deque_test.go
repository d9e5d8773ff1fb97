package queue

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/fpds/persistent"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequeSymmetry(t *testing.T) {
	dq := Deque[string]{}.Cons("x")
	h, err := dq.Head()
	require.NoError(t, err)
	l, err := dq.Last()
	require.NoError(t, err)
	assert.Equal(t, "x", h)
	assert.Equal(t, "x", l)
	//
	dq = Deque[string]{}.Snoc("y")
	h, _ = dq.Head()
	l, _ = dq.Last()
	assert.Equal(t, "y", h)
	assert.Equal(t, "y", l)
}

func TestDequeEmpty(t *testing.T) {
	var dq Deque[int]
	_, err := dq.Last()
	assert.True(t, errors.Is(err, persistent.ErrEmptyCollection), "Last(): %v", err)
	_, err = dq.Init()
	assert.True(t, errors.Is(err, persistent.ErrEmptyCollection), "Init(): %v", err)
	one := dq.Snoc(1)
	rest, err := one.Tail()
	require.NoError(t, err)
	assert.True(t, rest.IsEmpty())
	rest, err = one.Init()
	require.NoError(t, err)
	assert.True(t, rest.IsEmpty())
}

func TestDequeBothEnds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	var dq Deque[int]
	for i := 0; i < 20; i++ {
		dq = dq.Snoc(i)
	}
	var back []int
	for !dq.IsEmpty() {
		x, err := dq.Last()
		require.NoError(t, err)
		back = append(back, x)
		dq, err = dq.Init()
		require.NoError(t, err)
	}
	for i, x := range back {
		assert.Equal(t, 19-i, x)
	}
}

func TestDequeBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for _, c := range []int{0, 2, 3, 5} {
		dq := NewDeque[int](Balance(c))
		var model []int
		rnd := rand.New(rand.NewSource(int64(17 + c)))
		for step := 0; step < 2000; step++ {
			var err error
			switch op := rnd.Intn(6); {
			case op == 0 || op == 1:
				dq = dq.Cons(step)
				model = append([]int{step}, model...)
			case op == 2 || op == 3:
				dq = dq.Snoc(step)
				model = append(model, step)
			case op == 4 && len(model) > 0:
				dq, err = dq.Tail()
				model = model[1:]
			case op == 5 && len(model) > 0:
				dq, err = dq.Init()
				model = model[:len(model)-1]
			}
			require.NoError(t, err)
			checkBalance(t, dq)
			require.Equal(t, len(model), dq.Len())
			if len(model) > 0 {
				h, _ := dq.Head()
				l, _ := dq.Last()
				require.Equal(t, model[0], h, "head at step %d", step)
				require.Equal(t, model[len(model)-1], l, "last at step %d", step)
			}
		}
		if len(model) > 0 {
			assert.Equal(t, model, Drain[int](dq), "c=%d", c)
		} else {
			assert.True(t, dq.IsEmpty(), "c=%d", c)
		}
	}
}

func TestDequeOption(t *testing.T) {
	assert.Equal(t, 2, Deque[int]{}.c())
	assert.Equal(t, 2, NewDeque[int](Balance(1)).c())
	assert.Equal(t, 4, NewDeque[int](Balance(4)).c())
	dq := NewDeque[int](Balance(4)).Snoc(1).Cons(0)
	rest, _ := dq.Tail()
	assert.Equal(t, 4, rest.c(), "option lost during operations")
}

func checkBalance[T any](t *testing.T, dq Deque[T]) {
	c := dq.c()
	require.LessOrEqual(t, dq.lenf, c*dq.lenr+1, "front overloaded")
	require.LessOrEqual(t, dq.lenr, c*dq.lenf+1, "rear overloaded")
}
