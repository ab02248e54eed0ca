package sink

import (
	"context"

	"github.com/amirrezaask/setadt/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/amirrezaask/setadt/sink"

type traced struct {
	Sink
	tracer trace.Tracer
}

// Trace starts a span for every call on s. A nil provider means the global
// one set by tracing.Init.
func Trace(s Sink, tp trace.TracerProvider) Sink {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &traced{Sink: s, tracer: tp.Tracer(tracerName)}
}

func (t *traced) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("sink", t.Sink.String())))
}

func end(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotExist) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (t *traced) Get(ctx context.Context) ([]byte, error) {
	ctx, span := t.start(ctx, "sink.Get")
	bs, err := t.Sink.Get(ctx)
	end(span, err)
	return bs, err
}

func (t *traced) Store(ctx context.Context, data []byte) error {
	ctx, span := t.start(ctx, "sink.Store")
	span.SetAttributes(attribute.Int("bytes", len(data)))
	err := t.Sink.Store(ctx, data)
	end(span, err)
	return err
}
