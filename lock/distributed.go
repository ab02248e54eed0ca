package lock

import (
	"context"
	"sync"
	"time"

	"github.com/amirrezaask/setadt/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// unlockScript deletes the key only while it still holds our token.
const unlockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// DistributedLock holds keys in redis. A key held by a crashed process
// frees itself after ttl. Each hold stores a fresh token, and Unlock only
// releases a key still carrying it.
type DistributedLock struct {
	client   redis.Cmdable
	ttl      time.Duration
	tokens   sync.Map
	newToken func() string
}

func NewDistributedLock(client redis.Cmdable, ttl time.Duration) *DistributedLock {
	return &DistributedLock{client: client, ttl: ttl, newToken: uuid.NewString}
}

func (r *DistributedLock) Lock(ctx context.Context, key string) error {
	token := r.newToken()
	ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
	if err != nil {
		return errors.Wrap(err, "error in acquiring distributed lock for key('%s')", key)
	}
	if !ok {
		return errors.Newf("cannot aquire distributed lock for key('%s')", key)
	}
	r.tokens.Store(key, token)
	return nil
}

func (r *DistributedLock) Unlock(ctx context.Context, key string) error {
	token, ok := r.tokens.LoadAndDelete(key)
	if !ok {
		return errors.Newf("distributed lock for key('%s') is not held", key)
	}
	n, err := r.client.Eval(ctx, unlockScript, []string{key}, token).Int64()
	if err != nil {
		return errors.Wrap(err, "cannot release distributed lock for key('%s')", key)
	}
	if n == 0 {
		return errors.Newf("distributed lock for key('%s') expired and was taken over", key)
	}
	return nil
}
