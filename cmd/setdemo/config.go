package main

import (
	"github.com/amirrezaask/setadt/env"
	"github.com/amirrezaask/setadt/logging"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/pflag"
)

const (
	backingFile   = "file"
	backingAtomic = "atomic"
	backingRedis  = "redis"
	backingSQL    = "sql"
	backingMinio  = "minio"
)

type config struct {
	Backing       string
	Path          string
	SizesCapacity int
	Favourites    string

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	SQLDriver string
	SQLDSN    string

	MinioEndpoint string
	MinioBucket   string

	LogLevel  string
	SentryDSN string
	SentryEnv string

	Dump  bool
	Trace bool
}

func defaultConfig() *config {
	_ = env.Load()
	return &config{
		Backing:       env.GetEnvDefault("SETDEMO_BACKING", backingFile),
		Path:          env.GetEnvDefault("SETDEMO_PATH", "filtros_usuario.json"),
		SizesCapacity: env.GetEnvIntDefault("SETDEMO_SIZES_CAPACITY", 5),
		Favourites:    env.GetEnvDefault("SETDEMO_FAVOURITES", "color:red,size:M,brand:Nike"),

		RedisHost:     env.GetEnvDefault("SETDEMO_REDIS_HOST", "localhost"),
		RedisPort:     env.GetEnvIntDefault("SETDEMO_REDIS_PORT", 6379),
		RedisDB:       env.GetEnvIntDefault("SETDEMO_REDIS_DB", 0),
		RedisPassword: env.GetEnvDefault("SETDEMO_REDIS_PASSWORD", ""),

		SQLDriver: env.GetEnvDefault("SETDEMO_SQL_DRIVER", "sqlite3"),
		SQLDSN:    env.GetEnvDefault("SETDEMO_SQL_DSN", "file:setdemo.db"),

		MinioEndpoint: env.GetEnvDefault("SETDEMO_MINIO_ENDPOINT", "localhost:9000"),
		MinioBucket:   env.GetEnvDefault("SETDEMO_MINIO_BUCKET", "setdemo"),

		LogLevel:  env.GetEnvDefault("LOG_LEVEL", "warn"),
		SentryDSN: env.GetEnvDefault("SENTRY_DSN", ""),
		SentryEnv: env.GetEnvDefault("SENTRY_ENV", ""),
	}
}

func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Backing, "backing", c.Backing, "where favourite filters persist: file, atomic, redis, sql or minio")
	fs.StringVar(&c.Path, "path", c.Path, "file path, redis key, sql namespace or object name of the favourite filters")
	fs.IntVar(&c.SizesCapacity, "sizes-capacity", c.SizesCapacity, "capacity of the sizes set")
	fs.StringVar(&c.Favourites, "favourites", c.Favourites, "comma separated favourite filters the persistent set starts from")
	fs.StringVar(&c.SQLDriver, "sql-driver", c.SQLDriver, "sql driver for the sql backing: sqlite3 or mysql")
	fs.StringVar(&c.SQLDSN, "sql-dsn", c.SQLDSN, "connection string for the sql backing")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&c.Dump, "dump", false, "dump every set with go-spew")
	fs.BoolVar(&c.Trace, "trace", false, "print sink spans to stderr")
}

func (c *config) logging() logging.Config {
	return logging.Config{
		LogLevel: logging.ParseLevel(c.LogLevel),
		SentryConfig: sentry.ClientOptions{
			Dsn:         c.SentryDSN,
			Environment: c.SentryEnv,
		},
	}
}
