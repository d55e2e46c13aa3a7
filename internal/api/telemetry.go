package api

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

const (
	instrumentationName = "github.com/mailrify/mailrify-go"

	metricRequests = "mailrify.client.requests"         // Counter, one per logical call
	metricRetries  = "mailrify.client.retries"          // Counter
	metricDuration = "mailrify.client.request.duration" // Histogram in seconds

	attrMethod     = "http.request.method"
	attrURL        = "url.full"
	attrStatusCode = "http.response.status_code"
	attrAttempts   = "mailrify.attempts"
	attrOutcome    = "mailrify.outcome"
	attrReason     = "mailrify.retry.reason"
)

// telemetry bundles the tracer and metric instruments of one Client.
type telemetry struct {
	tracer   trace.Tracer
	requests metric.Int64Counter
	retries  metric.Int64Counter
	duration metric.Float64Histogram
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) *telemetry {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(instrumentationName, metric.WithInstrumentationVersion(Version))
	fallback := metricnoop.NewMeterProvider().Meter(instrumentationName)

	t := &telemetry{tracer: tp.Tracer(instrumentationName, trace.WithInstrumentationVersion(Version))}

	var err error
	t.requests, err = meter.Int64Counter(metricRequests,
		metric.WithDescription("Logical Mailrify API calls by method and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		t.requests, _ = fallback.Int64Counter(metricRequests)
	}

	t.retries, err = meter.Int64Counter(metricRetries,
		metric.WithDescription("Retried Mailrify API attempts"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		t.retries, _ = fallback.Int64Counter(metricRetries)
	}

	t.duration, err = meter.Float64Histogram(metricDuration,
		metric.WithDescription("Duration of logical Mailrify API calls including retries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		t.duration, _ = fallback.Float64Histogram(metricDuration)
	}

	return t
}

func (t *telemetry) start(ctx context.Context, method, rawURL string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "mailrify "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(attrMethod, method),
			attribute.String(attrURL, spanURL(rawURL)),
		),
	)
}

func (t *telemetry) retry(ctx context.Context, method, reason string) {
	t.retries.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrReason, reason),
	))
}

func (t *telemetry) finish(ctx context.Context, span trace.Span, method string, status, attempts int, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = apierrors.KindOf(err).String()
	}

	if status > 0 {
		span.SetAttributes(attribute.Int(attrStatusCode, status))
	}
	span.SetAttributes(attribute.Int(attrAttempts, attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	attrs := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrOutcome, outcome),
	)
	t.requests.Add(ctx, 1, attrs)
	t.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// spanURL drops the query string so addresses used as filters stay out of traces.
func spanURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
