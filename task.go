package cotask

import "sync"

// task wraps one top-level computation together with the handle it needs
// to put itself back onto the ready queue. It is shared between the queue
// and any wake callback that still holds it; the slot mutex makes sure at
// most one iteration ever holds the computation out of the slot.
type task struct {
	mu sync.Mutex
	// nil while the computation is held by a polling iteration,
	// and forever after completion
	fut    Pollable
	queue  *readyQueue
	result *futureResult
}

func newTask(p Pollable, q *readyQueue) *task {
	q.addSender()
	return &task{
		fut:    p,
		queue:  q,
		result: newFutureResult(),
	}
}

// Wake re-enqueues the task so the executor polls it again.
// Waking a task that is already queued only costs one extra no-op
// iteration; waking a task that has already completed is ignored.
// Wake panics with ErrQueueFull if the ready queue is at capacity:
// wake has no caller to hand an error to, and a queue too small for its
// wake fan-out is a sizing bug, not a transient condition.
func (t *task) Wake() {
	if t.result.IsDone() {
		return
	}
	err := t.queue.push(t)
	if err == ErrNoConsumer && t.result.IsDone() {
		// the task completed while this wake was in flight
		return
	}
	if err != nil {
		panic(err)
	}
}

// takeSlot takes exclusive possession of the computation.
// It returns nil if another iteration currently holds it, or if the task
// has already completed.
func (t *task) takeSlot() Pollable {
	t.mu.Lock()
	fut := t.fut
	t.fut = nil
	t.mu.Unlock()
	return fut
}

func (t *task) putSlot(fut Pollable) {
	t.mu.Lock()
	t.fut = fut
	t.mu.Unlock()
}

// complete records the result and releases the task's hold on the queue.
func (t *task) complete(res *PollResult) {
	t.result.deliver(res)
	t.queue.dropSender()
}

// dropUnqueued releases the queue hold of a task that failed to enqueue.
func (t *task) dropUnqueued() {
	t.queue.dropSender()
}
