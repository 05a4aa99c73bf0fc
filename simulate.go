package pagereplace

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

type (
	// Step records the outcome of one reference.
	Step[Page comparable] struct {
		// Index is the 1-based position of the reference.
		Index int
		// Page is the page that was referenced.
		Page Page
		// Fault is true if Page was not resident.
		Fault bool
		// Evicted is true if Victim was removed
		// to make room for Page.
		Evicted bool
		Victim  Page
		// Frames holds the resident pages after the reference,
		// from oldest to newest.
		Frames []Page
	}
	// Result is the trace of a single run.
	// Constructed by [Run].
	Result[Page comparable] struct {
		Policy   Policy
		Capacity int
		// Faults is the number of steps whose Fault is true.
		Faults int
		// Steps holds one entry per reference, in sequence order.
		Steps []Step[Page]
	}
)

// MinimumCapacity defines the lowest frame count supported by [Run].
const MinimumCapacity = 1

// Run drives sequence through the given policy with capacity frames
// and returns the complete trace.
// An error wrapping [ErrInvalidConfiguration] is returned
// if capacity is below [MinimumCapacity], sequence is empty,
// or policy is unknown. No steps are processed in that case.
func Run[Page comparable](sequence []Page, capacity int, policy Policy) (*Result[Page], error) {
	if err := validate(sequence, capacity); err != nil {
		return nil, err
	}
	replacer, err := newReplacer(policy, sequence, capacity)
	if err != nil {
		return nil, err
	}
	var (
		frames = newFrameSet[Page](capacity)
		result = &Result[Page]{
			Policy:   policy,
			Capacity: capacity,
			Steps:    make([]Step[Page], len(sequence)),
		}
	)
	for position, page := range sequence {
		result.Steps[position] = reference(frames, replacer, page, position)
		if result.Steps[position].Fault {
			result.Faults++
		}
	}
	return result, nil
}

func validate[Page comparable](sequence []Page, capacity int) error {
	if capacity < MinimumCapacity {
		return minCapacityError(capacity)
	}
	if len(sequence) == 0 {
		return emptySequenceError()
	}
	return nil
}

// reference applies one position of the sequence to the frame set.
func reference[Page comparable](
	frames *frameSet[Page], replacer replacer[Page],
	page Page, position int,
) Step[Page] {
	step := Step[Page]{
		Index: position + 1,
		Page:  page,
	}
	resident, hit := frames.lookup(page)
	if !hit {
		step.Fault = true
		if frames.full() {
			victim := replacer.victim(frames)
			if debugging {
				assert(victim != nil,
					"policy did not select a victim on a full frame set")
			}
			frames.remove(victim)
			replacer.evicted(victim)
			step.Evicted = true
			step.Victim = victim.Page
		}
		resident = frames.insert(page)
	}
	replacer.referenced(resident, position)
	if debugging {
		assert(frames.len() <= frames.capacity,
			"frame set exceeds capacity")
	}
	step.Frames = frames.snapshot()
	return step
}

// Compare runs every policy from [Policies] over the same input
// concurrently. Results are returned in [Policies] order.
func Compare[Page comparable](sequence []Page, capacity int) ([]*Result[Page], error) {
	if err := validate(sequence, capacity); err != nil {
		return nil, err
	}
	var (
		policies = Policies()
		results  = make([]*Result[Page], len(policies))
		group    errgroup.Group
	)
	for i, policy := range policies {
		group.Go(func() error {
			result, err := Run(sequence, capacity, policy)
			if err != nil {
				return fmt.Errorf("%s: %w", policy, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FrameString joins the resident pages with single spaces.
func (s Step[Page]) FrameString() string {
	var builder strings.Builder
	for i, page := range s.Frames {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprint(&builder, page)
	}
	return builder.String()
}

// Summary formats the fault count as "<policy>: <N> page faults".
func (r *Result[_]) Summary() string {
	return fmt.Sprintf("%s: %d page faults", r.Policy, r.Faults)
}

// Evictions returns the number of steps that evicted a page.
func (r *Result[_]) Evictions() int {
	var evictions int
	for _, step := range r.Steps {
		if step.Evicted {
			evictions++
		}
	}
	return evictions
}
