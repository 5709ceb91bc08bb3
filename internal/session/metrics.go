package session

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	eventCounter   metric.Int64Counter
	evalCounter    metric.Int64Counter
	errorCounter   metric.Int64Counter
	activeSessions metric.Int64UpDownCounter
	eventHistogram metric.Float64Histogram
)

// InitMetrics registers custom OTel metric instruments for the calculator
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	eventCounter, err = meter.Int64Counter("calculator.events.total",
		metric.WithDescription("Total number of calculator events handled"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("creating event counter: %w", err)
	}

	evalCounter, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Total number of completed evaluations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of calculator API errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	activeSessions, err = meter.Int64UpDownCounter("calculator.sessions.active",
		metric.WithDescription("Number of open calculator sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return fmt.Errorf("creating session counter: %w", err)
	}

	eventHistogram, err = meter.Float64Histogram("calculator.event.duration",
		metric.WithDescription("Duration of calculator event handling in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating event histogram: %w", err)
	}

	return nil
}
