package cotask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noopWaker = wakerFunc(func() {})

func TestReady(t *testing.T) {
	res, ready := Ready("hi").Poll(noopWaker)
	assert.True(t, ready)
	require.NotNil(t, res)
	assert.Equal(t, "hi", res.Value)
}

func TestSeqRunsStepsInOrder(t *testing.T) {
	var order []int
	step := func(i int) Pollable {
		return PollFunc(func(Waker) (*PollResult, bool) {
			order = append(order, i)
			return &PollResult{Value: i}, true
		})
	}

	res, ready := Seq(step(1), step(2), step(3)).Poll(noopWaker)
	assert.True(t, ready)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 3, res.Value)
}

func TestSeqResumesAtPendingStep(t *testing.T) {
	firstPolls := 0
	first := PollFunc(func(Waker) (*PollResult, bool) {
		firstPolls++
		return &PollResult{}, true
	})
	blocked := true
	gate := PollFunc(func(Waker) (*PollResult, bool) {
		if blocked {
			return nil, false
		}
		return &PollResult{}, true
	})

	seq := Seq(first, gate, Ready("end"))

	res, ready := seq.Poll(noopWaker)
	assert.False(t, ready)
	assert.Nil(t, res)

	blocked = false
	res, ready = seq.Poll(noopWaker)
	assert.True(t, ready)
	assert.Equal(t, "end", res.Value)
	// completed steps are not polled again on resume
	assert.Equal(t, 1, firstPolls)
}

func TestSeqShortCircuitsOnError(t *testing.T) {
	boom := errors.New("boom")
	reached := false
	seq := Seq(
		Ready(1),
		PollFunc(func(Waker) (*PollResult, bool) {
			return &PollResult{Err: boom}, true
		}),
		PollFunc(func(Waker) (*PollResult, bool) {
			reached = true
			return &PollResult{}, true
		}),
	)

	res, ready := seq.Poll(noopWaker)
	assert.True(t, ready)
	assert.ErrorIs(t, res.Err, boom)
	assert.False(t, reached)
}

func TestEmptySeq(t *testing.T) {
	res, ready := Seq().Poll(noopWaker)
	assert.True(t, ready)
	require.NotNil(t, res)
	assert.NoError(t, res.Err)
}

func TestJoinCollectsValues(t *testing.T) {
	slowPolls := 0
	slow := PollFunc(func(Waker) (*PollResult, bool) {
		slowPolls++
		if slowPolls < 2 {
			return nil, false
		}
		return &PollResult{Value: "slow"}, true
	})
	fastPolls := 0
	fast := PollFunc(func(Waker) (*PollResult, bool) {
		fastPolls++
		return &PollResult{Value: "fast"}, true
	})

	join := Join(fast, slow)

	res, ready := join.Poll(noopWaker)
	assert.False(t, ready)
	assert.Nil(t, res)

	res, ready = join.Poll(noopWaker)
	assert.True(t, ready)
	assert.Equal(t, []any{"fast", "slow"}, res.Value)
	// completed parts are not polled again
	assert.Equal(t, 1, fastPolls)
	assert.Equal(t, 2, slowPolls)
}

func TestJoinError(t *testing.T) {
	boom := errors.New("boom")
	join := Join(
		Ready(1),
		PollFunc(func(Waker) (*PollResult, bool) {
			return &PollResult{Err: boom}, true
		}),
	)

	res, ready := join.Poll(noopWaker)
	assert.True(t, ready)
	assert.ErrorIs(t, res.Err, boom)
}

func TestJoinNothing(t *testing.T) {
	res, ready := Join().Poll(noopWaker)
	assert.True(t, ready)
	assert.Equal(t, []any{}, res.Value)
}
