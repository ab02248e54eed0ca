package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirrezaask/setadt/errors"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

type Config struct {
	DebugMode    bool
	LogLevel     slog.Level
	SentryConfig sentry.ClientOptions
	// Output defaults to os.Stdout.
	Output io.Writer
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// New builds a logger writing JSON to c.Output and, when a sentry DSN and
// environment are configured, forwarding warnings and errors to sentry.
func New(c Config) (*slog.Logger, error) {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	level := c.LogLevel
	if c.DebugMode {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}),
	}

	if c.SentryConfig.Dsn != "" && c.SentryConfig.Environment != "" {
		if err := sentry.Init(c.SentryConfig); err != nil {
			return nil, errors.Wrap(err, "cannot initialize sentry")
		}
		handlers = append(handlers, slogsentry.Option{
			Level:     slog.LevelWarn,
			AddSource: true,
		}.NewSentryHandler())
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Init installs the logger built by New as the slog default.
func Init(c Config) error {
	logger, err := New(c)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
