package retry

import (
	"context"
	"fmt"
	"time"
)

// Do calls f, and on failure calls it again up to retries more times,
// sleeping backoff in between. It gives up early when ctx is done.
func Do(ctx context.Context, f func() error, retries int, backoff time.Duration) error {
	err := f()
	for i := 0; err != nil && i < retries; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("retry canceled after %d attempts: %w", i+1, err)
		case <-time.After(backoff):
		}
		err = f()
	}

	if err != nil {
		return fmt.Errorf("retried for %d times: %w", retries, err)
	}
	return nil
}
