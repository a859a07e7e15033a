package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Metrics holds the pipeline metrics
type Metrics struct {
	FacilitiesAnalyzed metric.Int64Counter
	DesertsAnalyzed    metric.Int64Counter
	FindingsEmitted    metric.Int64Counter
	SummaryErrors      metric.Int64Counter
}

// Setup initializes OpenTelemetry trace and metric pipelines
func Setup(ctx context.Context, serviceName, serviceVersion, endpoint string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	shutdown := func(ctx context.Context) error {
		return errors.Join(
			meterProvider.Shutdown(ctx),
			tracerProvider.Shutdown(ctx),
		)
	}

	return shutdown, nil
}

// InitMetrics initializes pipeline metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/caremap/healthdesert")

	facilitiesAnalyzed, err := meter.Int64Counter(
		"pipeline.facilities.analyzed",
		metric.WithDescription("Number of facilities analyzed"),
	)
	if err != nil {
		return nil, err
	}

	desertsAnalyzed, err := meter.Int64Counter(
		"pipeline.deserts.analyzed",
		metric.WithDescription("Number of desert zones analyzed"),
	)
	if err != nil {
		return nil, err
	}

	findingsEmitted, err := meter.Int64Counter(
		"pipeline.findings.emitted",
		metric.WithDescription("Number of rule-based findings emitted"),
	)
	if err != nil {
		return nil, err
	}

	summaryErrors, err := meter.Int64Counter(
		"pipeline.summary.errors",
		metric.WithDescription("Number of failed narrative summary calls"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		FacilitiesAnalyzed: facilitiesAnalyzed,
		DesertsAnalyzed:    desertsAnalyzed,
		FindingsEmitted:    findingsEmitted,
		SummaryErrors:      summaryErrors,
	}, nil
}

// RecordFindings records findings emitted for one report entry
func RecordFindings(ctx context.Context, metrics *Metrics, entryType string, count int) {
	if metrics == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("entry.type", entryType),
	}
	metrics.FindingsEmitted.Add(ctx, int64(count), metric.WithAttributes(attrs...))
}

// RecordSummaryError records one failed summary call
func RecordSummaryError(ctx context.Context, metrics *Metrics, entryType string) {
	if metrics == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("entry.type", entryType),
	}
	metrics.SummaryErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
}
