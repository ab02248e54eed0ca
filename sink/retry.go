package sink

import (
	"context"
	"time"

	"github.com/amirrezaask/setadt/retry"
)

type retrying struct {
	Sink
	retries int
	backoff time.Duration
}

// WithRetry retries failed Stores up to retries more times, waiting backoff
// between attempts. Gets are not retried.
func WithRetry(s Sink, retries int, backoff time.Duration) Sink {
	return &retrying{Sink: s, retries: retries, backoff: backoff}
}

func (r *retrying) Store(ctx context.Context, data []byte) error {
	return retry.Do(ctx, func() error {
		return r.Sink.Store(ctx, data)
	}, r.retries, r.backoff)
}
