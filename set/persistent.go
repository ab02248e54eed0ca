package set

import (
	"context"
	"log/slog"
	"slices"

	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/lock"
	"github.com/amirrezaask/setadt/sink"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// Persistent is a set whose members are written through to a sink.Sink on
// every mutation. The sink is read once, when the set is opened.
//
// A Persistent is not safe for concurrent use. Two instances sharing a sink
// overwrite each other's writes, since each stores the members it holds in
// memory. Open both WithLocker to have every mutation reread the sink under
// the lock first. sink.WithLock alone only keeps single reads and writes
// from overlapping.
type Persistent[T comparable] struct {
	elements []T
	sink     sink.Sink
	loadErr  error
	logger   *slog.Logger
	locker   lock.Locker
	lockKey  string
}

type Option func(*options)

type options struct {
	logger  *slog.Logger
	locker  lock.Locker
	lockKey string
}

// WithLogger sets the logger used to report an unreadable backing store.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLocker makes every mutation hold key in l while it rereads the sink,
// applies the change and writes the result back. The key must differ from
// any key the sink itself is locked with.
func WithLocker(l lock.Locker, key string) Option {
	return func(o *options) {
		o.locker = l
		o.lockKey = key
	}
}

// NewPersistent opens a set backed by the JSON file at path.
func NewPersistent[T comparable](path string, opts ...Option) *Persistent[T] {
	return OpenPersistent[T](context.Background(), sink.NewFile(path), opts...)
}

// OpenPersistent loads the members stored in s. Missing content yields an
// empty set. Unreadable or malformed content also yields an empty set, the
// failure is logged and kept for LoadErr, and s is left as is until the next
// successful write.
func OpenPersistent[T comparable](ctx context.Context, s sink.Sink, opts ...Option) *Persistent[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	p := &Persistent[T]{
		elements: []T{},
		sink:     s,
		logger:   o.logger,
		locker:   o.locker,
		lockKey:  o.lockKey,
	}
	if err := p.load(ctx); err != nil {
		p.loadErr = err
		p.logger.Warn("cannot read backing store, starting with an empty set", "sink", s.String(), "err", err)
	}
	return p
}

func (p *Persistent[T]) load(ctx context.Context) error {
	elements, err := p.read(ctx)
	if err != nil {
		return err
	}
	p.elements = elements
	return nil
}

func (p *Persistent[T]) read(ctx context.Context) ([]T, error) {
	elements := []T{}
	data, err := p.sink.Get(ctx)
	if errors.Is(err, sink.ErrNotExist) {
		return elements, nil
	}
	if err != nil {
		return nil, errors.Mark(err, ErrPersistenceRead, "cannot read %s", p.sink)
	}

	var stored []T
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Mark(err, ErrPersistenceRead, "cannot decode %s", p.sink)
	}
	for _, v := range stored {
		if !slices.Contains(elements, v) {
			elements = append(elements, v)
		}
	}
	return elements, nil
}

// mutate applies change to the members and writes them when it reports a
// change. With a locker the members are reread from the sink first, all
// under the lock.
func (p *Persistent[T]) mutate(ctx context.Context, change func() bool) (err error) {
	if p.locker == nil {
		if !change() {
			return nil
		}
		return p.Sync(ctx)
	}

	if err := p.locker.Lock(ctx, p.lockKey); err != nil {
		return errors.Mark(err, ErrPersistenceWrite, "cannot lock %s", p.sink)
	}
	defer func() {
		err = errors.Join(err, p.locker.Unlock(ctx, p.lockKey))
	}()
	elements, err := p.read(ctx)
	if err != nil {
		return err
	}
	p.elements = elements
	if !change() {
		return nil
	}
	return p.Sync(ctx)
}

// LoadErr returns the failure absorbed while opening the set, if any.
func (p *Persistent[T]) LoadErr() error {
	return p.loadErr
}

// Sync rewrites the sink from the in-memory members. Callers can use it to
// retry after a mutation reported ErrPersistenceWrite.
func (p *Persistent[T]) Sync(ctx context.Context) error {
	data, err := json.MarshalIndent(p.elements, "", "  ")
	if err != nil {
		return errors.Mark(err, ErrPersistenceWrite, "cannot encode set members")
	}
	if err := p.sink.Store(ctx, data); err != nil {
		return errors.Mark(err, ErrPersistenceWrite, "cannot write %s", p.sink)
	}
	return nil
}

func (p *Persistent[T]) Add(v T) error {
	return p.AddContext(context.Background(), v)
}

// AddContext appends v and rewrites the sink. On a write failure v stays a
// member in memory.
func (p *Persistent[T]) AddContext(ctx context.Context, v T) error {
	return p.mutate(ctx, func() bool {
		if slices.Contains(p.elements, v) {
			return false
		}
		p.elements = append(p.elements, v)
		return true
	})
}

func (p *Persistent[T]) Remove(v T) (bool, error) {
	return p.RemoveContext(context.Background(), v)
}

func (p *Persistent[T]) RemoveContext(ctx context.Context, v T) (bool, error) {
	removed := false
	err := p.mutate(ctx, func() bool {
		i := slices.Index(p.elements, v)
		if i < 0 {
			return false
		}
		p.elements = slices.Delete(p.elements, i, i+1)
		removed = true
		return true
	})
	return removed, err
}

func (p *Persistent[T]) Contains(v T) bool {
	return slices.Contains(p.elements, v)
}

func (p *Persistent[T]) Elements() []T {
	return slices.Clone(p.elements)
}

func (p *Persistent[T]) Replace(values ...T) error {
	return p.ReplaceContext(context.Background(), values...)
}

// ReplaceContext swaps the members for values, first occurrence wins, and
// writes the sink exactly once.
func (p *Persistent[T]) ReplaceContext(ctx context.Context, values ...T) error {
	elements := make([]T, 0, len(values))
	for _, v := range values {
		if !slices.Contains(elements, v) {
			elements = append(elements, v)
		}
	}
	return p.mutate(ctx, func() bool {
		p.elements = elements
		return true
	})
}

func (p *Persistent[T]) Len() int { return len(p.elements) }

func (p *Persistent[T]) String() string {
	return format(p.elements)
}
