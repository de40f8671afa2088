// Package observability provides OpenTelemetry tracing and metrics for
// pipeline traversals.
//
// Traced and Counted are pipeline stages: they wrap a pipeline so that each
// traversal opens a span or increments a counter as elements are pulled.
// Both mark the result impure, since a traversal now has effects beyond
// yielding values.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("seqdemo"))
//	defer tp.Shutdown(ctx)
//
//	traced := observability.Traced(p, observability.Tracer("seqdemo"), "evens")
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("seqdemo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("seqdemo"))
//	counted := observability.Counted(p, metrics.Elements())
package observability
