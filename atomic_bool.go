package cotask

import "sync/atomic"

type AtomicBool struct {
	v int32
}

func NewAtomicBool(b bool) *AtomicBool {
	a := AtomicBool{}
	a.Set(b)
	return &a
}

func (a *AtomicBool) Set(b bool) {
	if b {
		atomic.StoreInt32(&a.v, 1)
	} else {
		atomic.StoreInt32(&a.v, 0)
	}
}

func (a *AtomicBool) IsTrue() bool {
	return atomic.LoadInt32(&a.v) == 1
}
