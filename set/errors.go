package set

import (
	"fmt"

	"github.com/amirrezaask/setadt/errors"
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrPersistenceRead  = errors.New("persistence read failure")
	ErrPersistenceWrite = errors.New("persistence write failure")
)

// CapacityExceededError is returned by Bounded.Add when the set is full.
type CapacityExceededError struct {
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: maximum of %d elements reached", ErrCapacityExceeded, e.Capacity)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
