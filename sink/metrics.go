package sink

import (
	"context"
	"time"

	"github.com/amirrezaask/setadt/errors"

	"github.com/prometheus/client_golang/prometheus"
)

var durationBuckets = []float64{
	0.0005,
	0.001, // 1ms
	0.002,
	0.005,
	0.01, // 10ms
	0.02,
	0.05,
	0.1, // 100 ms
	0.2,
	0.5,
	1.0, // 1s
	2.0,
	5.0,
	10.0, // 10s
}

type instrumented struct {
	Sink
	name     string
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// Instrument records the duration and failures of every call on s, labelled
// with name and the operation. Collectors already registered on reg under
// the same namespace are reused, so several sinks can share them.
func Instrument(s Sink, reg prometheus.Registerer, namespace string, name string) (Sink, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "setsink",
		Name:      "operation_duration_seconds",
		Help:      "Sink operation durations by [sink] [op]",
		Buckets:   durationBuckets,
	}, []string{"sink", "op"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "setsink",
		Name:      "operation_failures_total",
		Help:      "How many sink operations failed, partitioned by sink and op.",
	}, []string{"sink", "op"})

	var err error
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if failures, err = register(reg, failures); err != nil {
		return nil, err
	}

	return &instrumented{Sink: s, name: name, duration: duration, failures: failures}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, errors.Wrap(err, "cannot register sink metrics")
}

func (i *instrumented) observe(op string, start time.Time, err error) {
	i.duration.WithLabelValues(i.name, op).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, ErrNotExist) {
		i.failures.WithLabelValues(i.name, op).Inc()
	}
}

func (i *instrumented) Get(ctx context.Context) ([]byte, error) {
	start := time.Now()
	bs, err := i.Sink.Get(ctx)
	i.observe("get", start, err)
	return bs, err
}

func (i *instrumented) Store(ctx context.Context, data []byte) error {
	start := time.Now()
	err := i.Sink.Store(ctx, data)
	i.observe("store", start, err)
	return err
}
