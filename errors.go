package cotask

import "errors"

var (
	ErrQueueFull           = errors.New("task queue is full")
	ErrNoConsumer          = errors.New("executor has already terminated")
	ErrSpawnerClosed       = errors.New("spawner has been closed")
	ErrInvalidTaskQueueCap = errors.New("task queue capacity must be positive")
)
