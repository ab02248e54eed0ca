package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

var errFlaky = errors.New("flaky")

func TestDo(t *testing.T) {
	t.Run("should stop at first success", func(t *testing.T) {
		is := is.New(t)
		calls := 0
		err := Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errFlaky
			}
			return nil
		}, 5, time.Millisecond)
		is.NoErr(err)
		is.Equal(calls, 3)
	})

	t.Run("should give up after retries", func(t *testing.T) {
		is := is.New(t)
		calls := 0
		err := Do(context.Background(), func() error {
			calls++
			return errFlaky
		}, 2, time.Millisecond)
		is.True(errors.Is(err, errFlaky))
		is.Equal(calls, 3)
	})

	t.Run("should stop when context is canceled", func(t *testing.T) {
		is := is.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		err := Do(ctx, func() error {
			calls++
			return errFlaky
		}, 10, time.Hour)
		is.True(errors.Is(err, errFlaky))
		is.Equal(calls, 1)
	})
}
