package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// UpstreamMetrics defines the interface for recording downstream backend calls.
// Service examples: "identity", "recognition", "inventory", "ledger".
// Status is the HTTP status code as a string, or "unavailable" when the call
// never produced a response.
type UpstreamMetrics interface {
	RecordCall(ctx context.Context, service, method, status string, duration time.Duration)
}

// upstreamMetrics implements UpstreamMetrics using OpenTelemetry metrics.
type upstreamMetrics struct {
	callCounter   metric.Int64Counter
	durationHisto metric.Float64Histogram
}

// NewUpstreamMetrics creates a new UpstreamMetrics implementation using the
// provided meter provider. The namespace parameter is used as a prefix for all
// metric names (e.g., "gateway").
func NewUpstreamMetrics(meterProvider metric.MeterProvider, namespace string) (UpstreamMetrics, error) {
	meter := meterProvider.Meter(namespace)

	callCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_upstream_requests_total", namespace),
		metric.WithDescription("Total number of downstream backend calls"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream call counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_upstream_request_duration_seconds", namespace),
		metric.WithDescription("Duration of downstream backend calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream duration histogram: %w", err)
	}

	return &upstreamMetrics{
		callCounter:   callCounter,
		durationHisto: durationHisto,
	}, nil
}

// RecordCall records one downstream call with service, method and status labels.
func (u *upstreamMetrics) RecordCall(
	ctx context.Context,
	service, method, status string,
	duration time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("method", method),
		attribute.String("status", status),
	)
	u.callCounter.Add(ctx, 1, attrs)
	u.durationHisto.Record(ctx, duration.Seconds(), attrs)
}

// NoOpUpstreamMetrics is a no-op implementation of UpstreamMetrics for when
// metrics are disabled.
type NoOpUpstreamMetrics struct{}

// NewNoOpUpstreamMetrics creates a no-op UpstreamMetrics implementation.
func NewNoOpUpstreamMetrics() UpstreamMetrics {
	return &NoOpUpstreamMetrics{}
}

// RecordCall does nothing when metrics are disabled.
func (n *NoOpUpstreamMetrics) RecordCall(
	ctx context.Context,
	service, method, status string,
	duration time.Duration,
) {
	// No-op
}
