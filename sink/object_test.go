package sink

import (
	"context"
	"testing"

	"github.com/amirrezaask/setadt/objectstore"

	"github.com/stretchr/testify/assert"
)

type bucket map[string][]byte

func (b bucket) Put(ctx context.Context, name string, data []byte) error {
	b[name] = data
	return nil
}

func (b bucket) Get(ctx context.Context, name string) ([]byte, error) {
	data, ok := b[name]
	if !ok {
		return nil, objectstore.ErrNoObject
	}
	return data, nil
}

func TestObject(t *testing.T) {
	t.Run("should map a missing object to ErrNotExist", func(t *testing.T) {
		_, err := NewObject(bucket{}, "favs.json").Get(context.Background())
		assert.ErrorIs(t, err, ErrNotExist)
	})

	t.Run("should put and get the named object", func(t *testing.T) {
		a := assert.New(t)
		b := bucket{}
		s := NewObject(b, "favs.json")
		a.NoError(s.Store(context.Background(), []byte(`["a"]`)))
		a.Equal(`["a"]`, string(b["favs.json"]))

		bs, err := s.Get(context.Background())
		a.NoError(err)
		a.Equal(`["a"]`, string(bs))
	})
}
