package sink

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirrezaask/setadt/lock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var errDiskFull = errors.New("disk full")

// flaky fails the first n Stores.
type flaky struct {
	*Memory
	failures int
}

func (f *flaky) Store(ctx context.Context, data []byte) error {
	if f.failures > 0 {
		f.failures--
		return errDiskFull
	}
	return f.Memory.Store(ctx, data)
}

func TestWithRetry(t *testing.T) {
	t.Run("should succeed once the sink recovers", func(t *testing.T) {
		a := assert.New(t)
		f := &flaky{Memory: NewMemory(), failures: 2}
		s := WithRetry(f, 3, time.Millisecond)
		a.NoError(s.Store(context.Background(), []byte(`[]`)))
		a.Equal(1, f.Writes())
	})

	t.Run("should return the last failure when retries run out", func(t *testing.T) {
		f := &flaky{Memory: NewMemory(), failures: 5}
		s := WithRetry(f, 1, time.Millisecond)
		assert.ErrorIs(t, s.Store(context.Background(), []byte(`[]`)), errDiskFull)
	})
}

func TestWithLock(t *testing.T) {
	t.Run("should release the key after each call", func(t *testing.T) {
		a := assert.New(t)
		ctx := context.Background()
		l := lock.NewInMemoryLock()
		s := WithLock(NewMemory(), l, "favs")

		_, err := s.Get(ctx)
		a.ErrorIs(err, ErrNotExist)
		a.NoError(s.Store(ctx, []byte(`["a"]`)))
		a.NoError(s.Store(ctx, []byte(`["b"]`)))
		a.NoError(l.Lock(ctx, "favs"))
	})

	t.Run("should refuse to write while another holder has the key", func(t *testing.T) {
		a := assert.New(t)
		ctx := context.Background()
		l := lock.NewInMemoryLock()
		require.NoError(t, l.Lock(ctx, "favs"))
		m := NewMemory()

		a.Error(WithLock(m, l, "favs").Store(ctx, []byte(`["a"]`)))
		a.Equal(0, m.Writes())
	})
}

func TestInstrument(t *testing.T) {
	t.Run("should observe calls and count failures", func(t *testing.T) {
		a := assert.New(t)
		ctx := context.Background()
		reg := prometheus.NewRegistry()
		s, err := Instrument(&flaky{Memory: NewMemory(), failures: 1}, reg, "test", "favs")
		require.NoError(t, err)

		_, _ = s.Get(ctx)
		a.Error(s.Store(ctx, []byte(`[]`)))
		a.NoError(s.Store(ctx, []byte(`[]`)))

		i := s.(*instrumented)
		a.Equal(float64(1), testutil.ToFloat64(i.failures.WithLabelValues("favs", "store")))
		a.Equal(float64(0), testutil.ToFloat64(i.failures.WithLabelValues("favs", "get")))
		count, err := testutil.GatherAndCount(reg, "test_setsink_operation_duration_seconds")
		a.NoError(err)
		a.Equal(2, count)
	})

	t.Run("should share collectors between sinks on the same registry", func(t *testing.T) {
		a := assert.New(t)
		reg := prometheus.NewRegistry()
		first, err := Instrument(NewMemory(), reg, "test", "first")
		a.NoError(err)
		second, err := Instrument(NewMemory(), reg, "test", "second")
		a.NoError(err)
		a.Same(first.(*instrumented).duration, second.(*instrumented).duration)
	})
}

func TestTrace(t *testing.T) {
	t.Run("should record a span per call and mark failures", func(t *testing.T) {
		a := assert.New(t)
		sr := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
		s := Trace(&flaky{Memory: NewMemory(), failures: 1}, tp)

		_, _ = s.Get(context.Background())
		_ = s.Store(context.Background(), []byte(`[]`))

		spans := sr.Ended()
		require.Len(t, spans, 2)
		a.Equal("sink.Get", spans[0].Name())
		a.Equal(codes.Unset, spans[0].Status().Code)
		a.Equal("sink.Store", spans[1].Name())
		a.Equal(codes.Error, spans[1].Status().Code)
	})
}
