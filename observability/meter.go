package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "metric exporter")
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "resource")
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	if name == "" {
		name = defaultTracerName
	}
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by pipeline stages.
type Metrics struct {
	elements   metric.Int64Counter
	traversals metric.Int64Counter
	duration   metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter("seq.elements",
		metric.WithDescription("Elements pulled through instrumented pipelines"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", "seq.elements")
	}

	traversals, err := meter.Int64Counter("seq.traversals",
		metric.WithDescription("Completed or abandoned pipeline traversals"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", "seq.traversals")
	}

	duration, err := meter.Float64Histogram("seq.traversal.duration",
		metric.WithDescription("Wall time from first pull to end of traversal"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", "seq.traversal.duration")
	}

	return &Metrics{
		elements:   elements,
		traversals: traversals,
		duration:   duration,
	}, nil
}

// Elements returns the per-element counter, for use with Counted.
func (m *Metrics) Elements() metric.Int64Counter { return m.elements }

// RecordTraversal records one finished traversal of the named pipeline.
func (m *Metrics) RecordTraversal(ctx context.Context, pipeline string, completed bool, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrPipeline, pipeline),
		attribute.Bool(AttrCompleted, completed),
	)
	m.traversals.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String(AttrPipeline, pipeline),
	))
}
