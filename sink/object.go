package sink

import (
	"context"

	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/objectstore"
)

// ObjectStore is the part of objectstore.MinioClient the Object sink needs.
type ObjectStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}

var _ ObjectStore = (*objectstore.MinioClient)(nil)

// Object keeps the content as a single object in a bucket.
type Object struct {
	store ObjectStore
	name  string
}

func NewObject(store ObjectStore, name string) *Object {
	return &Object{store: store, name: name}
}

func (o *Object) Get(ctx context.Context) ([]byte, error) {
	bs, err := o.store.Get(ctx, o.name)
	if errors.Is(err, objectstore.ErrNoObject) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, errors.Wrap(err, "error in object sink get for '%s'", o.name)
	}
	return bs, nil
}

func (o *Object) Store(ctx context.Context, data []byte) error {
	return errors.Wrap(o.store.Put(ctx, o.name, data), "error in object sink put for '%s'", o.name)
}

func (o *Object) String() string { return "object:" + o.name }
