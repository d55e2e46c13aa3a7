package mailrify

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/mailrify/mailrify-go/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	// overrides holds configuration keys set by options; they take
	// precedence over the environment.
	overrides map[string]any

	httpClient     *http.Client
	transport      Transport
	logger         *zerolog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	limiter        *rate.Limiter
	retryDelay     time.Duration

	environ func() []string
}

func (c *clientConfig) set(key string, value any) {
	if c.overrides == nil {
		c.overrides = make(map[string]any)
	}
	c.overrides[key] = value
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
// Default: https://app.mailrify.com/api
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.set("base_url", url)
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
// Default: 10 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.set("timeout", timeout)
	}
}

// WithRetries sets how many times GET and HEAD requests are retried after
// the first attempt. Other methods are never retried.
// Default: 2
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.set("max_retries", count)
	}
}

// WithDebug enables request diagnostics. Unless WithLogger is also given,
// they are written to stderr.
func WithDebug(enabled bool) Option {
	return func(c *clientConfig) {
		c.set("debug", enabled)
	}
}

// WithUserAgent replaces the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.set("user_agent", userAgent)
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout is used as is.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTransport replaces the HTTP transport entirely, for example with a
// fake in tests.
func WithTransport(t Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
// Default: the global provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *clientConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider.
// Default: the global provider
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *clientConfig) {
		c.meterProvider = mp
	}
}

// WithRateLimit caps outgoing attempts at r per second with the given
// burst. Waiting honors the request context.
func WithRateLimit(r float64, burst int) Option {
	return func(c *clientConfig) {
		c.limiter = rate.NewLimiter(rate.Limit(r), max(burst, 1))
	}
}

// WithRetryDelay sets the delay before the first retry. It doubles after
// every retry.
// Default: 500 milliseconds
func WithRetryDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = d
	}
}

// apiOptions translates the non-scalar settings for the internal client.
func (c *clientConfig) apiOptions() []api.Option {
	var opts []api.Option
	if c.transport != nil {
		opts = append(opts, api.WithTransport(c.transport))
	}
	if c.httpClient != nil {
		opts = append(opts, api.WithHTTPClient(c.httpClient))
	}
	if c.logger != nil {
		opts = append(opts, api.WithLogger(*c.logger))
	}
	if c.tracerProvider != nil {
		opts = append(opts, api.WithTracerProvider(c.tracerProvider))
	}
	if c.meterProvider != nil {
		opts = append(opts, api.WithMeterProvider(c.meterProvider))
	}
	if c.limiter != nil {
		opts = append(opts, api.WithLimiter(c.limiter))
	}
	if c.retryDelay > 0 {
		opts = append(opts, api.WithRetryDelay(c.retryDelay))
	}
	return opts
}
