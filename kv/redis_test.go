package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisConfig(t *testing.T) {
	assert.Equal(t, "localhost:6379", RedisConfig{Host: "localhost", Port: 6379}.Addr())
}

func TestRedisMock(t *testing.T) {
	t.Run("should answer commands of the target client", func(t *testing.T) {
		a := assert.New(t)
		var r *Redis
		mock := NewRedisMock(&r)
		mock.ExpectGet("favs").SetVal(`["a"]`)

		v, err := r.Get(context.Background(), "favs").Result()
		a.NoError(err)
		a.Equal(`["a"]`, v)
		a.NoError(mock.ExpectationsWereMet())
	})
}
