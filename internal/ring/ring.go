// Package ring is a specialized adaption of `container/ring` for holding resident frames.
package ring

import "iter"

type (
	// A Ring is an element of a circular list, or ring.
	// Rings do not have a beginning or end; a pointer to any ring element
	// serves as reference to the entire ring. Empty rings are represented
	// as nil Ring pointers. The zero value for a Ring is a one-element
	// ring with zero Metadata.
	Ring[Page comparable] struct {
		next, prev *Ring[Page]
		Metadata[Page]
	}
	// Metadata stores the replacement state of a resident frame.
	// Each field is only meaningful to the policy that reads it.
	Metadata[Page comparable] struct {
		// Page is the identifier of the page held by the frame.
		Page Page
		// Uses counts references to the page since it was
		// last faulted in.
		Uses int
		// NextUse is the position of the page's next reference
		// in the sequence, or the sequence length if it never recurs.
		NextUse int
	}
)

func (r *Ring[Page]) init() *Ring[Page] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Page]) Next() *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Page]) Prev() *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move moves n % r.Len() elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element. r must not be empty.
func (r *Ring[Page]) Move(n int) *Ring[Page] {
	if r.next == nil {
		return r.init()
	}
	switch {
	case n < 0:
		for ; n < 0; n++ {
			r = r.prev
		}
	case n > 0:
		for ; n > 0; n-- {
			r = r.next
		}
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be empty.
//
// If r and s point to the same ring, linking
// them removes the elements between r and s from the ring.
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r.
func (r *Ring[Page]) Link(s *Ring[Page]) *Ring[Page] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n % r.Len() elements from the ring r, starting
// at r.Next(). If n % r.Len() == 0, r remains unchanged.
// The result is the removed subring. r must not be empty.
func (r *Ring[Page]) Unlink(n int) *Ring[Page] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Page]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// Iter returns an iterator over the ring's elements in forward order,
// starting at r. The behavior is undefined if the ring is
// modified during iteration.
func (r *Ring[Page]) Iter() iter.Seq[*Ring[Page]] {
	return func(yield func(*Ring[Page]) bool) {
		if r == nil ||
			!yield(r) {
			return
		}
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}
