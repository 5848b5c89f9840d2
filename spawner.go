package cotask

import (
	"sync"

	slog "github.com/vearne/simplelog"
)

// Spawner submits new top-level computations to the executor.
// Any number of handles may coexist (see Clone) and submit concurrently.
type Spawner struct {
	queue     *readyQueue
	isClosed  *AtomicBool
	closeOnce sync.Once
}

// Spawn wraps the computation into a task and enqueues it.
// The computation is polled at least once, as long as Run is invoked.
func (s *Spawner) Spawn(p Pollable) (Future, error) {
	if s.isClosed.IsTrue() {
		return nil, ErrSpawnerClosed
	}

	t := newTask(p, s.queue)
	if err := s.queue.push(t); err != nil {
		t.dropUnqueued()
		return nil, err
	}
	slog.Debug("task spawned")
	return t.result, nil
}

// Clone returns an independent handle to the same executor.
func (s *Spawner) Clone() *Spawner {
	s.queue.addSender()
	return &Spawner{queue: s.queue, isClosed: NewAtomicBool(false)}
}

// Close signals that this handle will submit no more tasks.
// Once every handle is closed and every spawned task has completed,
// the executor's Run returns. Close is idempotent.
func (s *Spawner) Close() {
	s.closeOnce.Do(func() {
		s.isClosed.Set(true)
		s.queue.dropSender()
		slog.Debug("spawner closed")
	})
}
