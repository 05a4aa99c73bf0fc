package pagereplace

import (
	"strconv"
	"strings"
)

type (
	// Policy selects the replacement algorithm used by [Run].
	// The zero value is not a valid policy.
	Policy uint8

	// replacer decides which resident frame is evicted
	// when a fault occurs on a full frame set.
	// One replacer serves exactly one run.
	replacer[Page comparable] interface {
		// referenced is called for every position in the sequence,
		// after the frame set has been updated for that position.
		referenced(frame *frame[Page], position int)
		// victim selects a resident frame to evict.
		// The frame set is full when it is called.
		victim(frames *frameSet[Page]) *frame[Page]
		// evicted is called after the victim
		// has been removed from the frame set.
		evicted(frame *frame[Page])
	}
)

const (
	_ Policy = iota
	// FIFO evicts the page that was faulted in earliest.
	FIFO
	// Optimal evicts the page whose next reference is
	// furthest in the future, preferring pages that never recur.
	Optimal
	// LRU evicts the page that was referenced least recently.
	LRU
	// LFU evicts the page with the fewest references
	// since it was faulted in.
	LFU
)

var policyNames = [...]string{
	FIFO:    "FIFO",
	Optimal: "Optimal",
	LRU:     "LRU",
	LFU:     "LFU",
}

// Policies returns every supported policy, in declaration order.
func Policies() []Policy {
	return []Policy{FIFO, Optimal, LRU, LFU}
}

func (p Policy) valid() bool {
	return p >= FIFO && p <= LFU
}

func (p Policy) String() string {
	if p.valid() {
		return policyNames[p]
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// ParsePolicy returns the policy whose name matches s,
// ignoring case.
func ParsePolicy(s string) (Policy, error) {
	for _, policy := range Policies() {
		if strings.EqualFold(s, policyNames[policy]) {
			return policy, nil
		}
	}
	return 0, unknownPolicyNameError(s)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, unknownPolicyError(p)
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Policy) UnmarshalText(text []byte) error {
	policy, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

func newReplacer[Page comparable](policy Policy, sequence []Page, capacity int) (replacer[Page], error) {
	switch policy {
	case FIFO:
		return fifo[Page]{}, nil
	case Optimal:
		return newOptimal(sequence), nil
	case LRU:
		return newLRU[Page](capacity)
	case LFU:
		return lfu[Page]{}, nil
	default:
		return nil, unknownPolicyError(policy)
	}
}
