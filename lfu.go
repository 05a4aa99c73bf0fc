package pagereplace

// lfu counts references in the frame metadata.
// A page's count starts over each time it is faulted in.
type lfu[Page comparable] struct{}

func (l lfu[Page]) referenced(frame *frame[Page], _ int) {
	frame.Uses++
}

// victim returns the least used frame.
// Ties go to the frame that was faulted in earliest.
func (l lfu[Page]) victim(frames *frameSet[Page]) *frame[Page] {
	var least *frame[Page]
	for frame := range frames.all() {
		if least == nil || frame.Uses < least.Uses {
			least = frame
		}
	}
	return least
}

func (l lfu[Page]) evicted(*frame[Page]) {}
