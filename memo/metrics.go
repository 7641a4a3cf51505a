package memo

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type lookupResult string

const (
	resultHit    lookupResult = "hit"
	resultMiss   lookupResult = "miss"
	resultShared lookupResult = "shared"
	resultError  lookupResult = "error"
)

// metrics records lookup and computation counts for one cache.
type metrics struct {
	lookups      metric.Int64Counter
	computations metric.Int64Counter
	failures     metric.Int64Counter
	storeErrors  metric.Int64Counter
	durationHist metric.Float64Histogram

	attrs   metric.MeasurementOption
	results map[lookupResult]metric.MeasurementOption
}

func newMetrics(meter metric.Meter, name string) (*metrics, error) {
	lookups, err := meter.Int64Counter(
		"memo.lookups",
		metric.WithDescription("Number of Get calls by result (hit, miss, shared, error)"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	computations, err := meter.Int64Counter(
		"memo.computations",
		metric.WithDescription("Number of successful computations recorded"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"memo.failures",
		metric.WithDescription("Number of computations that returned an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	storeErrors, err := meter.Int64Counter(
		"memo.store.errors",
		metric.WithDescription("Number of failed writes to the backing store"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"memo.compute.duration_ms",
		metric.WithDescription("Duration of the wrapped function in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	nameAttr := attribute.String("cache.name", name)
	results := make(map[lookupResult]metric.MeasurementOption, 4)
	for _, r := range []lookupResult{resultHit, resultMiss, resultShared, resultError} {
		results[r] = metric.WithAttributes(nameAttr, attribute.String("result", string(r)))
	}

	return &metrics{
		lookups:      lookups,
		computations: computations,
		failures:     failures,
		storeErrors:  storeErrors,
		durationHist: durationHist,
		attrs:        metric.WithAttributes(nameAttr),
		results:      results,
	}, nil
}

// noopMetrics is used when instruments can not be created on the given meter.
func noopMetrics(name string) *metrics {
	m, _ := newMetrics(noop.NewMeterProvider().Meter(instrumentationName), name)
	return m
}

func (m *metrics) lookup(ctx context.Context, r lookupResult) {
	m.lookups.Add(ctx, 1, m.results[r])
}

func (m *metrics) computed(ctx context.Context, d time.Duration, err error) {
	if err != nil {
		m.failures.Add(ctx, 1, m.attrs)
	} else {
		m.computations.Add(ctx, 1, m.attrs)
	}
	m.durationHist.Record(ctx, float64(d)/float64(time.Millisecond), m.attrs)
}

func (m *metrics) storeFailed(ctx context.Context) {
	m.storeErrors.Add(ctx, 1, m.attrs)
}
