package pagereplace

import (
	"fmt"
	"strconv"
)

type constError string

// ErrInvalidConfiguration may be returned from [Run], [Compare],
// and [ParsePolicy].
const ErrInvalidConfiguration = constError("invalid configuration")

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: capacity must be >=%d but %d was requested",
		ErrInvalidConfiguration, MinimumCapacity, capacity)
}

func emptySequenceError() error {
	return fmt.Errorf(
		"%w: reference sequence is empty",
		ErrInvalidConfiguration)
}

func unknownPolicyError(policy Policy) error {
	return fmt.Errorf(
		"%w: unknown policy %s",
		ErrInvalidConfiguration, strconv.Itoa(int(policy)))
}

func unknownPolicyNameError(name string) error {
	return fmt.Errorf(
		"%w: unknown policy %q",
		ErrInvalidConfiguration, name)
}
