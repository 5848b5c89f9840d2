package cotask

import (
	"sync"
	"sync/atomic"

	slog "github.com/vearne/simplelog"
)

// default capacity of the ready queue
const SIZE = 10000

type ExecutorOption struct {
	taskQueueCap int
}

type option func(*ExecutorOption)

// Optional parameters
func WithTaskQueueCap(taskQueueCap int) option {
	return func(o *ExecutorOption) {
		o.taskQueueCap = taskQueueCap
	}
}

// readyQueue is the bounded multi-producer single-consumer channel carrying
// task references from spawners and wake calls to the executor.
// senderCount tracks the live producer handles: every Spawner and every
// pending task holds one. When the count reaches zero no reference that
// could still send exists, and the channel is closed.
type readyQueue struct {
	ch          chan *task
	senderCount int64
	// rwMutex so that push never races with close
	rwMutex sync.RWMutex
	closed  bool
}

func newReadyQueue(cap int) *readyQueue {
	return &readyQueue{ch: make(chan *task, cap)}
}

func (q *readyQueue) addSender() {
	atomic.AddInt64(&q.senderCount, 1)
}

func (q *readyQueue) dropSender() {
	if atomic.AddInt64(&q.senderCount, -1) == 0 {
		q.rwMutex.Lock()
		q.closed = true
		close(q.ch)
		q.rwMutex.Unlock()
		slog.Debug("ready queue closed")
	}
}

// push never blocks. A full queue means the executor is structurally
// under-provisioned, so it is reported immediately instead of waited out.
func (q *readyQueue) push(t *task) error {
	q.rwMutex.RLock()
	defer q.rwMutex.RUnlock()
	if q.closed {
		return ErrNoConsumer
	}
	select {
	case q.ch <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

// Executor owns the consuming end of the ready queue.
type Executor struct {
	queue *readyQueue
}

// NewExecutorAndSpawner creates an executor together with its first
// spawner handle.
/*
   options:
   cotask.WithTaskQueueCap() : set capacity of the ready queue
*/
func NewExecutorAndSpawner(opts ...option) (*Executor, *Spawner) {
	defaultOpts := &ExecutorOption{
		taskQueueCap: SIZE,
	}
	// Loop through each option
	for _, opt := range opts {
		opt(defaultOpts)
	}

	if defaultOpts.taskQueueCap <= 0 {
		panic(ErrInvalidTaskQueueCap)
	}

	q := newReadyQueue(defaultOpts.taskQueueCap)
	q.addSender()
	spawner := &Spawner{queue: q, isClosed: NewAtomicBool(false)}
	return &Executor{queue: q}, spawner
}

// Run pops task references and polls them until the ready queue is closed
// and empty, which happens once every Spawner handle has been closed and
// every spawned task has completed. Run blocks the calling goroutine; it
// is the only consumer.
func (e *Executor) Run() {
	for t := range e.queue.ch {
		fut := t.takeSlot()
		if fut == nil {
			// duplicate wake for a task that is being polled right now,
			// or that has already completed
			continue
		}
		res, ready := fut.Poll(t)
		if ready {
			t.complete(res)
			continue
		}
		// put the computation back; re-enqueueing is the job of the
		// next wake call
		t.putSlot(fut)
	}
	slog.Debug("ready queue drained, executor exits")
}

func (e *Executor) TaskQueueCap() int {
	return cap(e.queue.ch)
}

func (e *Executor) TaskQueueLength() int {
	return len(e.queue.ch)
}
