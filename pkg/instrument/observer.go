package instrument

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/element"
)

const defaultTracerName = "brickrouge"

// Config configures an Observer.
type Config struct {
	// Namespace is the metrics namespace (default: "brickrouge").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer

	// TracerName is the name of the tracer (default: "brickrouge").
	TracerName string

	// TracerProvider provides the tracer. Default: otel.GetTracerProvider()
	TracerProvider trace.TracerProvider

	// Filter determines which kinds to observe. If nil, all are.
	Filter func(kind string) bool
}

// Option configures an Observer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

// WithKindFilter restricts observation to the kinds filter accepts.
func WithKindFilter(filter func(kind string) bool) Option {
	return func(c *Config) {
		c.Filter = filter
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:  "brickrouge",
		Buckets:    []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		Registry:   prometheus.DefaultRegisterer,
		TracerName: defaultTracerName,
	}
}

// Observer records render metrics and spans. It implements
// element.Observer and is safe for concurrent use.
type Observer struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec

	tracer trace.Tracer
	filter func(kind string) bool
}

var _ element.Observer = (*Observer)(nil)

// New creates an Observer and registers its metrics. Creating a second
// Observer on the same registry reuses the registered metrics.
func New(opts ...Option) *Observer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}

	return &Observer{
		renders: register(config.Registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of element renders",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "outcome"})),

		duration: register(config.Registry, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Element render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"})),

		errors: register(config.Registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed element renders",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "error_type"})),

		tracer: config.TracerProvider.Tracer(config.TracerName),
		filter: config.Filter,
	}
}

func register[C prometheus.Collector](r prometheus.Registerer, c C) C {
	if err := r.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// BeginRender implements element.Observer.
func (o *Observer) BeginRender(ctx context.Context, kind string) (context.Context, func(element.Outcome, error)) {
	if o.filter != nil && !o.filter(kind) {
		return ctx, func(element.Outcome, error) {}
	}

	start := time.Now()
	ctx, span := o.tracer.Start(ctx, "brickrouge.render "+kind,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("brickrouge.kind", kind)),
	)

	return ctx, func(outcome element.Outcome, err error) {
		defer span.End()

		o.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		o.renders.WithLabelValues(kind, outcome.String()).Inc()
		span.SetAttributes(attribute.String("brickrouge.outcome", outcome.String()))

		if err != nil {
			o.errors.WithLabelValues(kind, categorizeError(err)).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

// categorizeError returns the error code of err, keeping label
// cardinality bounded.
func categorizeError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return "internal"
}
