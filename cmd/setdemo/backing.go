package main

import (
	"context"
	"time"

	"github.com/amirrezaask/setadt/env"
	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/kv"
	"github.com/amirrezaask/setadt/lock"
	"github.com/amirrezaask/setadt/objectstore"
	"github.com/amirrezaask/setadt/sequel"
	"github.com/amirrezaask/setadt/set"
	"github.com/amirrezaask/setadt/sink"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	storeRetries = 2
	storeBackoff = 100 * time.Millisecond
	lockTTL      = 5 * time.Second
)

// openSink builds the backing store selected by c.Backing, wrapped with
// retries, metrics and, when enabled, tracing. opts are what the favourites
// set must be opened with, closeFn releases connections.
func openSink(ctx context.Context, c *config) (s sink.Sink, opts []set.Option, closeFn func(), err error) {
	closeFn = func() {}
	switch c.Backing {
	case backingFile:
		s = sink.NewFile(c.Path)
	case backingAtomic:
		s = sink.NewAtomicFile(c.Path)
	case backingRedis:
		r, err := kv.NewRedis(ctx, kv.RedisConfig{
			Host:     c.RedisHost,
			Port:     c.RedisPort,
			DB:       c.RedisDB,
			Password: c.RedisPassword,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn = func() { r.Close() }
		locker := lock.NewDistributedLock(r, lockTTL)
		s = sink.WithLock(sink.NewRedis(r, c.Path), locker, c.Path+":io")
		opts = append(opts, set.WithLocker(locker, c.Path+":lock"))
	case backingSQL:
		db, err := sequel.New(sequel.DataSource{
			Driver:                c.SQLDriver,
			Name:                  "setdemo",
			ConnectionString:      c.SQLDSN,
			MetricsNamespace:      "setdemo",
			MaxOpenConnections:    4,
			MaxIdleConnections:    4,
			IdleConnectionTimeout: time.Minute,
			OpenConnectionTimeout: time.Minute,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		if c.LogLevel == "debug" {
			db = sequel.Debug(db)
		}
		closeFn = func() { db.Close() }
		if s, err = sink.NewSQL(ctx, db, c.Path); err != nil {
			closeFn()
			return nil, nil, nil, err
		}
	case backingMinio:
		accessKey, err := env.GetEnvRequiredNotEmpty("SETDEMO_MINIO_ACCESS_KEY")
		if err != nil {
			return nil, nil, nil, err
		}
		secretKey, err := env.GetEnvRequiredNotEmpty("SETDEMO_MINIO_SECRET_KEY")
		if err != nil {
			return nil, nil, nil, err
		}
		store, err := objectstore.NewMinio(ctx, objectstore.Config{
			Endpoint:       c.MinioEndpoint,
			BucketName:     c.MinioBucket,
			AccessID:       accessKey,
			SecretAccessID: secretKey,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn = store.Close
		s = sink.NewObject(store, c.Path)
	default:
		return nil, nil, nil, errors.Newf("unknown backing '%s'", c.Backing)
	}

	s = sink.WithRetry(s, storeRetries, storeBackoff)
	if c.Trace {
		s = sink.Trace(s, nil)
	}
	s, err = sink.Instrument(s, prometheus.DefaultRegisterer, "setdemo", c.Backing)
	if err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	return s, opts, closeFn, nil
}
