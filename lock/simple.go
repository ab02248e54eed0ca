package lock

import (
	"context"
	"sync"

	"github.com/amirrezaask/setadt/errors"
)

// InMemoryLock only excludes holders within the same process.
type InMemoryLock struct {
	data sync.Map
}

func NewInMemoryLock() *InMemoryLock {
	return &InMemoryLock{}
}

func (i *InMemoryLock) Lock(ctx context.Context, key string) error {
	if _, loaded := i.data.LoadOrStore(key, struct{}{}); loaded {
		return errors.Newf("cannot aquire lock for key('%s')", key)
	}
	return nil
}

func (i *InMemoryLock) Unlock(ctx context.Context, key string) error {
	i.data.Delete(key)
	return nil
}
