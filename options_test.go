package mailrify

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestOptions_ScalarOverrides(t *testing.T) {
	cfg := &clientConfig{}
	for _, opt := range []Option{
		WithBaseURL("https://x.test"),
		WithTimeout(3 * time.Second),
		WithRetries(5),
		WithDebug(true),
		WithUserAgent("ua"),
	} {
		opt(cfg)
	}

	assert.Equal(t, map[string]any{
		"base_url":    "https://x.test",
		"timeout":     3 * time.Second,
		"max_retries": 5,
		"debug":       true,
		"user_agent":  "ua",
	}, cfg.overrides)
	assert.Empty(t, cfg.apiOptions())
}

func TestOptions_ZeroTimeoutIsKept(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(0)(cfg)

	require.Contains(t, cfg.overrides, "timeout")
	assert.Equal(t, time.Duration(0), cfg.overrides["timeout"])

	_, err := New("k", withEnviron(), WithTimeout(0))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOptions_APIOptions(t *testing.T) {
	cfg := &clientConfig{}
	for _, opt := range []Option{
		WithHTTPClient(&http.Client{}),
		WithTransport(&recorder{}),
		WithLogger(zerolog.Nop()),
		WithTracerProvider(sdktrace.NewTracerProvider()),
		WithRateLimit(10, 0),
		WithRetryDelay(time.Second),
	} {
		opt(cfg)
	}

	assert.Len(t, cfg.apiOptions(), 6)
	require.NotNil(t, cfg.limiter)
	assert.Equal(t, 1, cfg.limiter.Burst())
}

func TestWithDebug_WritesToLogger(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{status: 200, body: `[]`}
	client := newTestClient(t, rec,
		WithDebug(true),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)

	_, err := client.Domains().List(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "/v1/domains")
	assert.Contains(t, out, "Bearer ***")
	assert.NotContains(t, out, "test-key")
}

func TestWithTracerProvider_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	rec := &recorder{status: 200, body: `{}`}
	client := newTestClient(t, rec, WithTracerProvider(tp))

	_, err := client.Campaigns().Get(context.Background(), "cp")
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "mailrify GET", spans[0].Name)
}

func TestWithRateLimit_HonorsContext(t *testing.T) {
	rec := &recorder{status: 200, body: `[]`}
	client := newTestClient(t, rec, WithRateLimit(0.001, 1))

	_, err := client.Domains().List(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Domains().List(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, rec.count())
}
