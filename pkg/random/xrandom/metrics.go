package xrandom

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

const (
	instrumentationName = "github.com/omeyang/xrandom/xrandom"

	metricFillCalls    = "xrandom.fill.calls"
	metricFillElements = "xrandom.fill.elements"

	statusOK = "ok"
)

type fillMetrics struct {
	calls    metric.Int64Counter
	elements metric.Int64Counter
}

func newFillMetrics(provider metric.MeterProvider) (*fillMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName)

	calls, err := meter.Int64Counter(
		metricFillCalls,
		metric.WithDescription("fill calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xrandom: create counter failed: %w", err)
	}

	elements, err := meter.Int64Counter(
		metricFillElements,
		metric.WithDescription("elements written by successful fills"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xrandom: create counter failed: %w", err)
	}

	return &fillMetrics{calls: calls, elements: elements}, nil
}

// record 记录一次填充；失败时 status 为错误分类名称。
func (m *fillMetrics) record(algorithm, distribution, dtype string, n int, err error) {
	status := statusOK
	if err != nil {
		status = xrerr.KindOf(err).String()
	}
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.String("distribution", distribution),
		attribute.String("dtype", dtype),
		attribute.String("status", status),
	)
	ctx := context.Background()
	m.calls.Add(ctx, 1, attrs)
	if err == nil && n > 0 {
		m.elements.Add(ctx, int64(n), attrs)
	}
}
