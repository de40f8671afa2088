package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/size"
)

// Traced wraps p so each traversal is recorded as a span called name.
// The span starts on the first pull and ends when the traversal is
// exhausted or closed, carrying the traversal id and element count.
func Traced[T any](p *pipeline.Pipeline[T], tracer trace.Tracer, name string) *pipeline.Pipeline[T] {
	return TracedFrom(context.Background(), p, tracer, name)
}

// TracedFrom is Traced with spans parented to the span in ctx.
func TracedFrom[T any](ctx context.Context, p *pipeline.Pipeline[T], tracer trace.Tracer, name string) *pipeline.Pipeline[T] {
	return pipeline.Chain(p, func(up pipeline.Enumerator[T]) pipeline.Enumerator[T] {
		return &tracedEnum[T]{source: up, ctx: ctx, tracer: tracer, name: name}
	}, pipeline.WithSideEffects())
}

// Counted wraps p so every element pulled adds one to counter.
func Counted[T any](p *pipeline.Pipeline[T], counter metric.Int64Counter, attrs ...attribute.KeyValue) *pipeline.Pipeline[T] {
	opt := metric.WithAttributes(attrs...)
	return pipeline.Chain(p, func(up pipeline.Enumerator[T]) pipeline.Enumerator[T] {
		return &countedEnum[T]{source: up, counter: counter, opt: opt}
	}, pipeline.WithSideEffects())
}

// Instrumented counts elements and records each traversal of p in m.
func Instrumented[T any](p *pipeline.Pipeline[T], m *Metrics, name string) *pipeline.Pipeline[T] {
	counted := Counted(p, m.Elements(), attribute.String(AttrPipeline, name))
	return pipeline.Chain(counted, func(up pipeline.Enumerator[T]) pipeline.Enumerator[T] {
		return &timedEnum[T]{source: up, metrics: m, name: name}
	}, pipeline.WithSideEffects())
}

type tracedEnum[T any] struct {
	source pipeline.Enumerator[T]
	ctx    context.Context
	tracer trace.Tracer
	name   string
	span   trace.Span
	count  int
	ended  bool
}

func (it *tracedEnum[T]) Next() bool {
	if it.ended {
		return false
	}
	if it.span == nil {
		_, it.span = it.tracer.Start(it.ctx, it.name, trace.WithAttributes(
			attribute.String(AttrTraversalID, uuid.NewString()),
			attribute.String(AttrPipeline, it.name),
		))
	}
	if it.source.Next() {
		it.count++
		return true
	}
	it.end(true)
	return false
}

func (it *tracedEnum[T]) end(completed bool) {
	if it.ended || it.span == nil {
		return
	}
	it.ended = true
	it.span.SetAttributes(
		attribute.Int(AttrCount, it.count),
		attribute.Bool(AttrCompleted, completed),
	)
	it.span.SetStatus(codes.Ok, "")
	it.span.End()
}

func (it *tracedEnum[T]) Current() T         { return it.source.Current() }
func (it *tracedEnum[T]) Measure() size.Info { return it.source.Measure() }

func (it *tracedEnum[T]) Close() {
	it.end(false)
	it.source.Close()
}

type countedEnum[T any] struct {
	source  pipeline.Enumerator[T]
	counter metric.Int64Counter
	opt     metric.AddOption
}

func (it *countedEnum[T]) Next() bool {
	if !it.source.Next() {
		return false
	}
	it.counter.Add(context.Background(), 1, it.opt)
	return true
}

func (it *countedEnum[T]) Current() T         { return it.source.Current() }
func (it *countedEnum[T]) Measure() size.Info { return it.source.Measure() }
func (it *countedEnum[T]) Close()             { it.source.Close() }

type timedEnum[T any] struct {
	source   pipeline.Enumerator[T]
	metrics  *Metrics
	name     string
	started  time.Time
	recorded bool
}

func (it *timedEnum[T]) Next() bool {
	if it.started.IsZero() {
		it.started = time.Now()
	}
	if it.source.Next() {
		return true
	}
	it.record(true)
	return false
}

func (it *timedEnum[T]) record(completed bool) {
	if it.recorded || it.started.IsZero() {
		return
	}
	it.recorded = true
	it.metrics.RecordTraversal(context.Background(), it.name, completed, time.Since(it.started))
}

func (it *timedEnum[T]) Current() T         { return it.source.Current() }
func (it *timedEnum[T]) Measure() size.Info { return it.source.Measure() }

func (it *timedEnum[T]) Close() {
	it.record(false)
	it.source.Close()
}
