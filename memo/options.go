package memo

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	instrumentationName = "github.com/on-the-ground/memo_ive_go/memo"

	defaultName = "memo"
)

// Option configures a Cache.
type Option func(*options)

type options struct {
	name        string
	logger      *zap.Logger
	meter       metric.Meter
	eventBuffer int
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.name == "" {
		o.name = defaultName
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.meter == nil {
		o.meter = otel.Meter(instrumentationName)
	}
	if o.eventBuffer < 0 {
		o.eventBuffer = 0
	}
	return o
}

// WithName labels the cache in logs and metrics. Default: "memo".
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger. Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMeter sets the meter instruments are created on.
// Default: the global OpenTelemetry meter provider.
func WithMeter(meter metric.Meter) Option {
	return func(o *options) { o.meter = meter }
}

// WithEvents enables the event channel returned by Cache.Events with the
// given buffer size. A buffer of 0 leaves events disabled.
func WithEvents(buffer int) Option {
	return func(o *options) { o.eventBuffer = buffer }
}
