package pagereplace

import "github.com/hashicorp/golang-lru/v2/simplelru"

// lru tracks recency of resident pages.
// The list is sized to the frame set and entries are removed
// on eviction, so it never evicts on its own.
type lru[Page comparable] struct {
	recency *simplelru.LRU[Page, struct{}]
}

func newLRU[Page comparable](capacity int) (*lru[Page], error) {
	recency, err := simplelru.NewLRU[Page, struct{}](capacity, nil)
	if err != nil {
		return nil, err
	}
	return &lru[Page]{recency: recency}, nil
}

func (l *lru[Page]) referenced(frame *frame[Page], _ int) {
	l.recency.Add(frame.Page, struct{}{})
}

func (l *lru[Page]) victim(frames *frameSet[Page]) *frame[Page] {
	page, _, ok := l.recency.GetOldest()
	if !ok {
		return nil
	}
	frame, _ := frames.lookup(page)
	return frame
}

func (l *lru[Page]) evicted(frame *frame[Page]) {
	l.recency.Remove(frame.Page)
}
