package pagereplace

// fifo evicts in insertion order, which
// is the frame set's own iteration order.
type fifo[Page comparable] struct{}

func (f fifo[Page]) referenced(*frame[Page], int) {}

func (f fifo[Page]) victim(frames *frameSet[Page]) *frame[Page] {
	return frames.oldest
}

func (f fifo[Page]) evicted(*frame[Page]) {}
