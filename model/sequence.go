package model

import "go.uber.org/atomic"

// IDGenerator hands out account ids. Implementations must never return the
// same id twice and never return an id <= 0.
type IDGenerator interface {
	NextID() int
	// Observe records an id that is already in use, so later NextID calls
	// return something greater.
	Observe(id int)
}

// Sequence is a monotonic IDGenerator, safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first id is 1.
func NewSequence() *Sequence {
	return NewSequenceFrom(0)
}

// NewSequenceFrom returns a Sequence whose first id is last+1.
// A negative last is treated as 0.
func NewSequenceFrom(last int) *Sequence {
	if last < 0 {
		last = 0
	}
	s := &Sequence{}
	s.last.Store(int64(last))
	return s
}

func (s *Sequence) NextID() int {
	return int(s.last.Inc())
}

// Observe moves the sequence past id. Lower ids are ignored.
func (s *Sequence) Observe(id int) {
	for {
		cur := s.last.Load()
		if int64(id) <= cur || s.last.CompareAndSwap(cur, int64(id)) {
			return
		}
	}
}
