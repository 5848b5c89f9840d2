// Package cotask is a minimal cooperative task executor.
// Computations are polled by a single consumer and reschedule themselves
// by calling their Waker when they can make progress again.
package cotask

// PollResult carries the completion result of a Pollable.
type PollResult struct {
	Value any
	Err   error
}

// Waker notifies the executor that a task may be worth polling again.
// Wake is safe to call from any goroutine, including timer callbacks.
type Waker interface {
	Wake()
}

// Pollable is a suspendable computation.
// Poll drives it forward one step. It returns (result, true) on completion.
// When it returns (nil, false) the computation must already have arranged
// for w.Wake() to be called once progress is possible, otherwise its task
// is never polled again.
// Poll must tolerate being called repeatedly after returning pending.
type Pollable interface {
	Poll(w Waker) (*PollResult, bool)
}

// Future is the handle returned by Spawn.
type Future interface {
	// Get blocks until the task has completed
	Get() *PollResult
	IsDone() bool
}
