package mailrify

import (
	"context"
	"net/http"
	"sync"

	"github.com/mailrify/mailrify-go/internal/api"
)

// Transport sends one HTTP exchange. Replace it with WithTransport.
type Transport = api.Transport

// TransportFunc adapts a function to Transport.
type TransportFunc = api.TransportFunc

// TransportRequest is one physical HTTP request handed to a Transport.
type TransportRequest = api.TransportRequest

// RawResponse is a response as returned by a Transport.
type RawResponse = api.RawResponse

// Query holds query parameters for Request. Values may be strings, numbers,
// booleans or string slices; nil values are dropped.
type Query = api.Query

// RequestOptions carries the optional parts of a raw request.
type RequestOptions struct {
	Query  Query
	Body   any
	Header http.Header
}

// Client is the Mailrify API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	settings  Settings
	mu        sync.RWMutex
	closed    bool
}

// New creates a client. An empty apiKey falls back to MAILRIFY_API_KEY.
// Other settings come from options, then MAILRIFY_* environment variables,
// then defaults.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	settings, err := loadSettings(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	apiClient, err := api.NewClient(api.Config{
		APIKey:     settings.APIKey,
		BaseURL:    settings.BaseURL,
		Timeout:    settings.Timeout,
		MaxRetries: settings.MaxRetries,
		Debug:      settings.Debug,
		UserAgent:  settings.UserAgent,
	}, cfg.apiOptions()...)
	if err != nil {
		return nil, err
	}

	final := apiClient.Config()
	settings.APIKey = final.APIKey
	settings.BaseURL = final.BaseURL
	settings.Timeout = final.Timeout
	settings.UserAgent = final.UserAgent

	return &Client{apiClient: apiClient, settings: settings}, nil
}

// NewFromEnv creates a client configured only from MAILRIFY_* environment
// variables and opts.
func NewFromEnv(opts ...Option) (*Client, error) {
	return New("", opts...)
}

// Settings returns the resolved configuration with the API key masked.
func (c *Client) Settings() Settings {
	s := c.settings
	if s.APIKey != "" {
		s.APIKey = "***"
	}
	return s
}

// Request sends a raw request to path, relative to the base URL, and
// returns the decoded JSON response. It goes through the same retry and
// error handling as the typed services.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions) (any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.apiClient.Do(ctx, &api.Request{
		Method: method,
		Path:   path,
		Query:  opts.Query,
		Body:   opts.Body,
		Header: opts.Header,
	})
}

// Close marks the client as closed. Later calls fail with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}
