package pagereplace

// optimal evicts using the precomputed position of
// each reference's next occurrence.
type optimal[Page comparable] struct {
	nextUse []int
}

// newOptimal scans the sequence once, backwards, so that
// nextUse[i] holds the next position referencing sequence[i],
// or len(sequence) if there is none.
func newOptimal[Page comparable](sequence []Page) *optimal[Page] {
	var (
		never   = len(sequence)
		nextUse = make([]int, len(sequence))
		seen    = make(map[Page]int)
	)
	for position := len(sequence) - 1; position >= 0; position-- {
		page := sequence[position]
		if next, ok := seen[page]; ok {
			nextUse[position] = next
		} else {
			nextUse[position] = never
		}
		seen[page] = position
	}
	return &optimal[Page]{nextUse: nextUse}
}

// referenced records when the page is needed again.
// A resident page is not referenced between two calls,
// so the value stays correct for every later position.
func (o *optimal[Page]) referenced(frame *frame[Page], position int) {
	frame.NextUse = o.nextUse[position]
}

// victim returns the frame needed furthest in the future.
// Pages that never recur carry the largest value,
// and ties go to the frame that was faulted in earliest.
func (o *optimal[Page]) victim(frames *frameSet[Page]) *frame[Page] {
	var furthest *frame[Page]
	for frame := range frames.all() {
		if furthest == nil || frame.NextUse > furthest.NextUse {
			furthest = frame
		}
	}
	return furthest
}

func (o *optimal[Page]) evicted(*frame[Page]) {}
