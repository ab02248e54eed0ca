package sink

import (
	"context"

	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/lock"
)

type locked struct {
	Sink
	locker lock.Locker
	key    string
}

// WithLock holds key in locker around every Get and Store, so two calls on
// the same backing store never overlap. It does not stop one writer from
// replacing content another wrote since its last Get; set.WithLocker does.
func WithLock(s Sink, locker lock.Locker, key string) Sink {
	return &locked{Sink: s, locker: locker, key: key}
}

func (l *locked) Get(ctx context.Context) (_ []byte, err error) {
	if err := l.locker.Lock(ctx, l.key); err != nil {
		return nil, errors.Wrap(err, "cannot lock %s for read", l.Sink)
	}
	defer func() {
		err = errors.Join(err, l.locker.Unlock(ctx, l.key))
	}()
	return l.Sink.Get(ctx)
}

func (l *locked) Store(ctx context.Context, data []byte) (err error) {
	if err := l.locker.Lock(ctx, l.key); err != nil {
		return errors.Wrap(err, "cannot lock %s for write", l.Sink)
	}
	defer func() {
		err = errors.Join(err, l.locker.Unlock(ctx, l.key))
	}()
	return l.Sink.Store(ctx, data)
}
