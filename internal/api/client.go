package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

// Version is the SDK release reported in the default User-Agent.
const Version = "0.1.0"

// Default configuration values.
const (
	DefaultBaseURL    = "https://app.mailrify.com/api"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultUserAgent  = "mailrify-go/" + Version
)

// HeaderRequestID carries the per-call correlation id in both directions.
const HeaderRequestID = apierrors.HeaderRequestID

// Config holds the settings validated by NewClient.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Debug      bool
	UserAgent  string
}

// Client executes requests against the Mailrify API. It holds no per-call
// state and is safe for concurrent use.
type Client struct {
	config    Config
	transport Transport
	retry     RetryPolicy
	logger    zerolog.Logger
	limiter   *rate.Limiter
	telemetry *telemetry

	httpClient     *http.Client
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	loggerSet      bool

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
	newID func() string
}

// Option configures the API client.
type Option func(*Client)

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithHTTPClient sends requests through client. It is ignored when a
// transport is also supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.loggerSet = true
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Client) {
		c.meterProvider = mp
	}
}

// WithLimiter waits on limiter before every physical attempt.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithRetryDelay sets the delay before the first retry.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retry.BaseDelay = d
	}
}

// NewClient validates cfg and creates a client. Empty BaseURL and UserAgent
// take their defaults; Timeout must be set and positive.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		retry: RetryPolicy{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  DefaultRetryDelay,
		},
		logger: zerolog.Nop(),
		sleep:  Wait,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		httpClient := c.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		c.transport = NewHTTPTransport(httpClient)
	}
	if cfg.Debug && !c.loggerSet {
		c.logger = newDebugLogger().Level(zerolog.DebugLevel)
	}
	c.telemetry = newTelemetry(c.tracerProvider, c.meterProvider)

	return c, nil
}

func normalizeConfig(cfg Config) (Config, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return cfg, apierrors.NewValidationError("an API key is required; pass it explicitly or set MAILRIFY_API_KEY")
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return cfg, apierrors.NewValidationError("invalid base URL %q", cfg.BaseURL)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout <= 0 {
		return cfg, apierrors.NewValidationError("timeout must be greater than zero")
	}
	if cfg.MaxRetries < 0 {
		return cfg, apierrors.NewValidationError("max retries must be zero or greater")
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return cfg, nil
}

// Config returns the validated configuration.
func (c *Client) Config() Config {
	return c.config
}

// BaseURL returns the base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Do executes req and returns the decoded JSON response, or nil for an
// empty body.
func (c *Client) Do(ctx context.Context, req *Request) (any, error) {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.decoded, nil
}

// Call executes a request and decodes the response into result, which may
// be nil.
func (c *Client) Call(ctx context.Context, method, path string, body, result any) error {
	return c.CallQuery(ctx, method, path, nil, body, result)
}

// CallQuery is Call with query parameters.
func (c *Client) CallQuery(ctx context.Context, method, path string, query Query, body, result any) error {
	resp, err := c.execute(ctx, &Request{Method: method, Path: path, Query: query, Body: body})
	if err != nil {
		return err
	}
	if result == nil || resp.decoded == nil {
		return nil
	}
	if err := json.Unmarshal(resp.raw.Body, result); err != nil {
		return &apierrors.Error{Message: "failed to decode response", Sentinel: apierrors.ErrDecode, Err: err}
	}
	return nil
}

type response struct {
	raw     *RawResponse
	decoded any
}

func (c *Client) execute(ctx context.Context, req *Request) (*response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	treq, err := c.buildRequest(req)
	if err != nil {
		return nil, err
	}

	ctx, span := c.telemetry.start(ctx, treq.Method, treq.URL)
	start := c.now()
	resp, attempts, err := c.attempt(ctx, treq)

	status := 0
	if resp != nil {
		status = resp.raw.StatusCode
	} else if apiErr := (*apierrors.APIError)(nil); errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	c.telemetry.finish(ctx, span, treq.Method, status, attempts, c.now().Sub(start), err)

	return resp, err
}

func (c *Client) buildRequest(req *Request) (*TransportRequest, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if !validMethod(method) {
		return nil, apierrors.NewValidationError("unsupported HTTP method %q", req.Method)
	}

	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.config.BaseURL + path

	query, err := req.Query.Encode()
	if err != nil {
		return nil, &apierrors.Error{Message: "failed to encode query", Sentinel: apierrors.ErrEncode, Err: err}
	}
	if query != "" {
		target += "?" + query
	}

	header := make(http.Header)
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+c.config.APIKey)
	header.Set("User-Agent", c.config.UserAgent)
	header.Set(HeaderRequestID, c.newID())

	var body []byte
	if req.Body != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(req.Body); err != nil {
			return nil, &apierrors.Error{Message: "failed to encode request body", Sentinel: apierrors.ErrEncode, Err: err}
		}
		body = bytes.TrimRight(buf.Bytes(), "\n")
		header.Set("Content-Type", "application/json")
	}

	for name, values := range req.Header {
		header.Del(name)
		for _, v := range values {
			header.Add(name, v)
		}
	}

	return &TransportRequest{
		Method: method,
		URL:    target,
		Header: header,
		Body:   body,
	}, nil
}

// attempt runs the retry loop. It returns the number of physical attempts
// made alongside the outcome.
func (c *Client) attempt(ctx context.Context, req *TransportRequest) (*response, int, error) {
	policy := c.retry
	start := c.now()

	for attempt := 0; attempt < policy.MaxAttempts(); attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, attempt, canceled(err)
			}
		}

		raw, err := c.transport.Send(ctx, req)
		if err == nil && raw == nil {
			err = errNoResponse
		}
		if err != nil {
			if ctx.Err() == nil && policy.ShouldRetryNetwork(req.Method, attempt) {
				delay := policy.Delay(attempt)
				c.logRetry(req, attempt, "network", delay, err)
				c.telemetry.retry(ctx, req.Method, "network")
				if werr := c.sleep(ctx, delay); werr != nil {
					return nil, attempt + 1, canceled(werr)
				}
				continue
			}
			netErr := &apierrors.NetworkError{Err: err, Method: req.Method, URL: req.URL, Attempts: attempt + 1}
			c.logFailure(req, attempt+1, netErr)
			return nil, attempt + 1, netErr
		}
		if raw.Header == nil {
			raw.Header = http.Header{}
		}

		decoded, err := decodeBody(raw.Body)
		if err != nil {
			c.logExchange(req, raw, attempt+1, c.now().Sub(start))
			return nil, attempt + 1, err
		}

		if raw.StatusCode >= 200 && raw.StatusCode < 300 {
			c.logExchange(req, raw, attempt+1, c.now().Sub(start))
			return &response{raw: raw, decoded: decoded}, attempt + 1, nil
		}

		if policy.ShouldRetryStatus(req.Method, raw.StatusCode, attempt) {
			delay := policy.Delay(attempt)
			reason := "status"
			if ra, ok := apierrors.ParseRetryAfter(raw.Header, c.now()); ok {
				delay = ra
				reason = "retry-after"
			}
			c.logRetry(req, attempt, reason, delay, nil)
			c.telemetry.retry(ctx, req.Method, reason)
			if werr := c.sleep(ctx, delay); werr != nil {
				return nil, attempt + 1, canceled(werr)
			}
			continue
		}

		c.logExchange(req, raw, attempt+1, c.now().Sub(start))
		return nil, attempt + 1, apierrors.Classify(raw.StatusCode, decoded, raw.Body, raw.Header, c.now())
	}

	return nil, policy.MaxAttempts(), &apierrors.Error{
		Message:  "exceeded maximum retry attempts",
		Sentinel: apierrors.ErrRetriesExhausted,
	}
}

// errNoResponse stands in for a Transport that returned neither a response
// nor an error.
var errNoResponse = errors.New("transport returned no response")

func validMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost,
		http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func decodeBody(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &apierrors.Error{Message: "failed to decode response", Sentinel: apierrors.ErrDecode, Err: err}
	}
	return v, nil
}

func canceled(err error) error {
	return &apierrors.Error{Message: "request canceled", Err: err}
}
