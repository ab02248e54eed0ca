package kv

import (
	"time"

	"github.com/go-redis/redismock/v9"
)

type redisMock struct {
	redismock.ClientMock
}

// ExpectLock answers a SetNX of token on key as acquired.
func (r *redisMock) ExpectLock(key string, token string, ttl time.Duration) {
	r.ExpectSetNX(key, token, ttl).SetVal(true)
}

// NewRedisMock points target at a client whose commands are answered by the
// returned mock.
func NewRedisMock(target **Redis) *redisMock {
	client, mock := redismock.NewClientMock()
	*target = &Redis{client}
	return &redisMock{mock}
}
