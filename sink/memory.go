package sink

import (
	"context"
	"slices"
)

// Memory keeps the content in process. It is useful in tests and for sets
// that only need the write-through contract, not durability.
type Memory struct {
	data   []byte
	stored bool
	writes int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(ctx context.Context) ([]byte, error) {
	if !m.stored {
		return nil, ErrNotExist
	}
	return slices.Clone(m.data), nil
}

func (m *Memory) Store(ctx context.Context, data []byte) error {
	m.data = slices.Clone(data)
	m.stored = true
	m.writes++
	return nil
}

// Writes returns how many times Store was called.
func (m *Memory) Writes() int { return m.writes }

func (m *Memory) String() string { return "memory" }
