package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/clinicore/doctor-chatbot"

// Metrics holds all application metrics
type Metrics struct {
	RequestCount    metric.Int64Counter
	RequestDuration metric.Float64Histogram
	FallbackCount   metric.Int64Counter
	StoreRetryCount metric.Int64Counter
}

// InitMetrics initializes application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	requestCount, err := meter.Int64Counter(
		"http.server.request.count",
		metric.WithDescription("Number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	fallbackCount, err := meter.Int64Counter(
		"pipeline.intent.fallback.count",
		metric.WithDescription("Number of utterances that fell below the intent confidence bar"),
	)
	if err != nil {
		return nil, err
	}

	storeRetryCount, err := meter.Int64Counter(
		"store.retry.count",
		metric.WithDescription("Number of retried store operations"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCount:    requestCount,
		RequestDuration: requestDuration,
		FallbackCount:   fallbackCount,
		StoreRetryCount: storeRetryCount,
	}, nil
}

// RecordRequestMetric records one HTTP request observation
func RecordRequestMetric(ctx context.Context, metrics *Metrics, method, path string, statusCode int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.route", path),
		attribute.Int("http.status_code", statusCode),
	}

	metrics.RequestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	metrics.RequestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordFallback records one fallback classification
func RecordFallback(ctx context.Context, metrics *Metrics, reason string) {
	metrics.FallbackCount.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordStoreRetry records one retried store operation attempt
func RecordStoreRetry(ctx context.Context, metrics *Metrics, operation string) {
	metrics.StoreRetryCount.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}
