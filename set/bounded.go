package set

import (
	"github.com/amirrezaask/setadt/errors"
)

// Bounded is a set with a fixed capacity chosen at construction. Members
// keep their insertion order, removal shifts the tail left.
type Bounded[T comparable] struct {
	storage []T
	size    int
}

func NewBounded[T comparable](capacity int) (*Bounded[T], error) {
	if capacity < 0 {
		return nil, errors.Newf("bounded set capacity must not be negative, got %d", capacity)
	}
	return &Bounded[T]{storage: make([]T, capacity)}, nil
}

func (b *Bounded[T]) Add(v T) error {
	if b.Contains(v) {
		return nil
	}
	if b.size == len(b.storage) {
		return &CapacityExceededError{Capacity: len(b.storage)}
	}
	b.storage[b.size] = v
	b.size++
	return nil
}

func (b *Bounded[T]) Remove(v T) (bool, error) {
	i := indexOf(b.storage[:b.size], v)
	if i < 0 {
		return false, nil
	}
	copy(b.storage[i:b.size-1], b.storage[i+1:b.size])
	var zero T
	b.storage[b.size-1] = zero
	b.size--
	return true, nil
}

func (b *Bounded[T]) Contains(v T) bool {
	return indexOf(b.storage[:b.size], v) >= 0
}

func (b *Bounded[T]) Elements() []T {
	items := make([]T, b.size)
	copy(items, b.storage[:b.size])
	return items
}

// Replace empties the set and adds values in order. On overflow the values
// accepted so far stay in the set and the CapacityExceededError is returned.
func (b *Bounded[T]) Replace(values ...T) error {
	clear(b.storage)
	b.size = 0
	for _, v := range values {
		if err := b.Add(v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bounded[T]) Len() int { return b.size }

func (b *Bounded[T]) Cap() int { return len(b.storage) }

func (b *Bounded[T]) String() string {
	return format(b.Elements())
}
