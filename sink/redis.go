package sink

import (
	"context"

	"github.com/amirrezaask/setadt/errors"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the content under a single key without expiration.
type Redis struct {
	client redis.Cmdable
	key    string
}

func NewRedis(client redis.Cmdable, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Get(ctx context.Context) ([]byte, error) {
	bs, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, errors.Wrap(err, "error in redis sink get for key('%s')", r.key)
	}
	return bs, nil
}

func (r *Redis) Store(ctx context.Context, data []byte) error {
	return errors.Wrap(r.client.Set(ctx, r.key, data, 0).Err(), "error in redis sink set for key('%s')", r.key)
}

func (r *Redis) String() string { return "redis:" + r.key }
