// Package instrument observes element renders with Prometheus metrics and
// OpenTelemetry spans.
//
// An Observer plugs into a rendering session:
//
//	obs := instrument.New(instrument.WithNamespace("myapp"))
//	s := element.NewSession(element.WithObserver(obs))
//	ctx = element.WithSession(ctx, s)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - brickrouge_renders_total: renders by widget kind and outcome
//     (rendered, empty, error)
//   - brickrouge_render_duration_seconds: render duration by widget kind
//   - brickrouge_render_errors_total: failed renders by kind and error code
//
// Every render opens a span named "brickrouge.render <kind>". Nested
// widgets open child spans. Spans use the global tracer provider unless
// WithTracerProvider is given.
package instrument
