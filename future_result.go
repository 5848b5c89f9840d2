package cotask

type futureResult struct {
	done   chan struct{}
	result *PollResult
	isDone *AtomicBool
}

func newFutureResult() *futureResult {
	f := futureResult{}
	f.done = make(chan struct{})
	f.isDone = NewAtomicBool(false)
	return &f
}

// Get blocks until the task has completed.
func (f *futureResult) Get() *PollResult {
	<-f.done
	return f.result
}

func (f *futureResult) IsDone() bool {
	return f.isDone.IsTrue()
}

// deliver is called exactly once, by the executor, on completion.
func (f *futureResult) deliver(res *PollResult) {
	if res == nil {
		res = &PollResult{}
	}
	f.result = res
	f.isDone.Set(true)
	close(f.done)
}
