package kv

import (
	"context"
	"fmt"

	"github.com/amirrezaask/setadt/errors"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	*redis.Client
}

type RedisConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func NewRedis(ctx context.Context, c RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr(),
		DB:       c.DB,
		Username: c.Username,
		Password: c.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "cannot ping redis at %s", c.Addr())
	}
	return &Redis{client}, nil
}
