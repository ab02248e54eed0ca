package set_test

import (
	"errors"
	"testing"

	"github.com/amirrezaask/setadt/set"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBounded[T comparable](t *testing.T, capacity int, values ...T) *set.Bounded[T] {
	t.Helper()
	b, err := set.NewBounded[T](capacity)
	require.NoError(t, err)
	require.NoError(t, b.Replace(values...))
	return b
}

func TestBounded_Add(t *testing.T) {
	t.Run("should reject the value after capacity", func(t *testing.T) {
		a := assert.New(t)
		b := newBounded(t, 5, "S", "M", "L", "XL", "XXL")

		err := b.Add("XXXL")
		a.ErrorIs(err, set.ErrCapacityExceeded)
		var ce *set.CapacityExceededError
		a.True(errors.As(err, &ce))
		a.Equal(5, ce.Capacity)
		a.Equal(5, b.Len())
		a.False(b.Contains("XXXL"))
	})

	t.Run("adding an existing member to a full set is a no-op", func(t *testing.T) {
		b := newBounded(t, 2, "S", "M")
		assert.NoError(t, b.Add("M"))
		assert.Equal(t, []string{"S", "M"}, b.Elements())
	})

	t.Run("zero capacity rejects everything", func(t *testing.T) {
		b := newBounded[int](t, 0)
		assert.ErrorIs(t, b.Add(1), set.ErrCapacityExceeded)
	})

	t.Run("negative capacity is refused", func(t *testing.T) {
		_, err := set.NewBounded[int](-1)
		assert.Error(t, err)
	})
}

func TestBounded_Remove(t *testing.T) {
	t.Run("should keep insertion order of survivors", func(t *testing.T) {
		a := assert.New(t)
		b := newBounded(t, 4, "a", "b", "c", "d")
		removed, err := b.Remove("b")
		a.NoError(err)
		a.True(removed)
		a.Equal([]string{"a", "c", "d"}, b.Elements())
		a.Equal(3, b.Len())
		a.Equal(4, b.Cap())
	})

	t.Run("freed slot can be used again", func(t *testing.T) {
		a := assert.New(t)
		b := newBounded(t, 2, "a", "b")
		_, _ = b.Remove("a")
		a.NoError(b.Add("c"))
		a.Equal([]string{"b", "c"}, b.Elements())
	})

	t.Run("removing a non member changes nothing", func(t *testing.T) {
		b := newBounded(t, 4, "a", "b", "c")
		removed, err := b.Remove("z")
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, []string{"a", "b", "c"}, b.Elements())
	})

	t.Run("contains never looks past the live prefix", func(t *testing.T) {
		b := newBounded(t, 3, 0, 1)
		_, _ = b.Remove(0)
		_, _ = b.Remove(1)
		assert.False(t, b.Contains(0))
	})
}

func TestBounded_Replace(t *testing.T) {
	t.Run("should collapse duplicates", func(t *testing.T) {
		b := newBounded(t, 3, "x")
		assert.NoError(t, b.Replace("S", "M", "S", "L"))
		assert.Equal(t, []string{"S", "M", "L"}, b.Elements())
	})

	t.Run("overflow propagates and keeps the accepted prefix", func(t *testing.T) {
		a := assert.New(t)
		b := newBounded(t, 2, "x")
		a.ErrorIs(b.Replace("S", "M", "L"), set.ErrCapacityExceeded)
		a.Equal([]string{"S", "M"}, b.Elements())
	})
}

func TestBounded_String(t *testing.T) {
	assert.Equal(t, "{S, M, L}", newBounded(t, 5, "S", "M", "L").String())
}
