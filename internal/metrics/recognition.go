package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RecognitionMetrics defines the interface for recording recognition pipeline
// outcomes. Type examples: "recognition", "merge", "confusion".
type RecognitionMetrics interface {
	RecordRecognition(ctx context.Context, eventType string)
}

// recognitionMetrics implements RecognitionMetrics using OpenTelemetry metrics.
type recognitionMetrics struct {
	recognitionCounter metric.Int64Counter
}

// NewRecognitionMetrics creates a new RecognitionMetrics implementation using
// the provided meter provider. The namespace parameter is used as a prefix for
// all metric names (e.g., "gateway").
func NewRecognitionMetrics(meterProvider metric.MeterProvider, namespace string) (RecognitionMetrics, error) {
	meter := meterProvider.Meter(namespace)

	recognitionCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_recognitions_total", namespace),
		metric.WithDescription("Total number of recognition pipeline events"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create recognition counter: %w", err)
	}

	return &recognitionMetrics{recognitionCounter: recognitionCounter}, nil
}

// RecordRecognition increments the recognition counter with a type label.
func (r *recognitionMetrics) RecordRecognition(ctx context.Context, eventType string) {
	r.recognitionCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("type", eventType),
		),
	)
}

// NoOpRecognitionMetrics is a no-op implementation of RecognitionMetrics for
// when metrics are disabled.
type NoOpRecognitionMetrics struct{}

// NewNoOpRecognitionMetrics creates a no-op RecognitionMetrics implementation.
func NewNoOpRecognitionMetrics() RecognitionMetrics {
	return &NoOpRecognitionMetrics{}
}

// RecordRecognition does nothing when metrics are disabled.
func (n *NoOpRecognitionMetrics) RecordRecognition(ctx context.Context, eventType string) {
	// No-op
}
