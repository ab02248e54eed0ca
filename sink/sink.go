// Package sink holds the byte-level stores a set.Persistent writes through
// to. Every Store replaces the whole content; there are no partial writes.
package sink

import (
	"context"

	"github.com/amirrezaask/setadt/errors"
)

// ErrNotExist is returned by Get when nothing has been stored yet.
var ErrNotExist = errors.New("sink: nothing stored")

type Sink interface {
	// Get returns the last stored content, or ErrNotExist.
	Get(ctx context.Context) ([]byte, error)
	// Store replaces the content with data.
	Store(ctx context.Context, data []byte) error
	String() string
}
