package cotask

// PollFunc adapts an ordinary function to the Pollable interface.
type PollFunc func(w Waker) (*PollResult, bool)

func (f PollFunc) Poll(w Waker) (*PollResult, bool) {
	return f(w)
}

// Ready returns a Pollable that completes on its first poll with value v.
func Ready(v any) Pollable {
	return PollFunc(func(Waker) (*PollResult, bool) {
		return &PollResult{Value: v}, true
	})
}

// Seq runs steps one after another within a single task.
// It completes with the result of the last step. A step that completes
// with a non-nil Err short-circuits the sequence; the remaining steps are
// never polled.
func Seq(steps ...Pollable) Pollable {
	return &seqFuture{steps: steps}
}

type seqFuture struct {
	steps []Pollable
	idx   int
	last  *PollResult
}

func (s *seqFuture) Poll(w Waker) (*PollResult, bool) {
	for s.idx < len(s.steps) {
		res, ready := s.steps[s.idx].Poll(w)
		if !ready {
			return nil, false
		}
		s.idx++
		s.last = res
		if res != nil && res.Err != nil {
			s.idx = len(s.steps)
		}
	}
	if s.last == nil {
		s.last = &PollResult{}
	}
	return s.last, true
}

// Join runs parts concurrently within a single task and completes once all
// of them have. Value is the []any of part values in part order; if any
// part completes with a non-nil Err, the first such Err wins.
func Join(parts ...Pollable) Pollable {
	return &joinFuture{
		parts:   parts,
		results: make([]*PollResult, len(parts)),
	}
}

type joinFuture struct {
	parts   []Pollable
	results []*PollResult
}

func (j *joinFuture) Poll(w Waker) (*PollResult, bool) {
	pending := false
	for i, p := range j.parts {
		if j.results[i] != nil {
			// already completed on an earlier poll
			continue
		}
		res, ready := p.Poll(w)
		if !ready {
			pending = true
			continue
		}
		if res == nil {
			res = &PollResult{}
		}
		j.results[i] = res
	}
	if pending {
		return nil, false
	}

	values := make([]any, len(j.results))
	for i, res := range j.results {
		if res.Err != nil {
			return &PollResult{Err: res.Err}, true
		}
		values[i] = res.Value
	}
	return &PollResult{Value: values}, true
}
