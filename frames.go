package pagereplace

import (
	"iter"

	"github.com/djdv/go-pagereplace/internal/ring"
)

type (
	frame[Page comparable]    = ring.Ring[Page]
	metadata[Page comparable] = ring.Metadata[Page]
	// frameSet holds the resident pages of one run
	// in insertion order. Hits never reorder it.
	frameSet[Page comparable] struct {
		index    map[Page]*frame[Page]
		oldest   *frame[Page]
		capacity int
	}
)

func newFrameSet[Page comparable](capacity int) *frameSet[Page] {
	return &frameSet[Page]{
		index:    make(map[Page]*frame[Page], capacity),
		capacity: capacity,
	}
}

func (fs *frameSet[Page]) lookup(page Page) (*frame[Page], bool) {
	frame, ok := fs.index[page]
	return frame, ok
}

func (fs *frameSet[_]) len() int { return len(fs.index) }

func (fs *frameSet[_]) full() bool { return fs.len() == fs.capacity }

// insert links a new frame for page behind the newest resident.
// Caller must ensure the page is not resident and the set is not full.
func (fs *frameSet[Page]) insert(page Page) *frame[Page] {
	frame := &frame[Page]{
		Metadata: metadata[Page]{Page: page},
	}
	if fs.oldest == nil {
		fs.oldest = frame
	} else {
		fs.oldest.Prev().Link(frame)
	}
	fs.index[page] = frame
	return frame
}

// remove unlinks a resident frame, discarding its metadata.
func (fs *frameSet[Page]) remove(frame *frame[Page]) {
	delete(fs.index, frame.Page)
	if fs.len() == 0 {
		fs.oldest = nil
		return
	}
	if frame == fs.oldest {
		fs.oldest = frame.Next()
	}
	frame.Prev().Unlink(1)
}

// all iterates the resident frames from oldest to newest.
func (fs *frameSet[Page]) all() iter.Seq[*frame[Page]] {
	return fs.oldest.Iter()
}

// snapshot copies the resident pages from oldest to newest.
func (fs *frameSet[Page]) snapshot() []Page {
	pages := make([]Page, 0, fs.len())
	for frame := range fs.all() {
		pages = append(pages, frame.Page)
	}
	return pages
}
