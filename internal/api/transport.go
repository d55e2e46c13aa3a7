package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// TransportRequest is one physical HTTP request.
type TransportRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// RawResponse is a response exactly as the transport received it.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends a single HTTP request. It returns an error only when no
// HTTP response was obtained; non-2xx statuses are not errors at this level.
type Transport interface {
	Send(ctx context.Context, req *TransportRequest) (*RawResponse, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *TransportRequest) (*RawResponse, error)

// Send calls f(ctx, req).
func (f TransportFunc) Send(ctx context.Context, req *TransportRequest) (*RawResponse, error) {
	return f(ctx, req)
}

// HTTPTransport is the net/http backed Transport.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a transport using client. A nil client gets a
// fresh http.Client.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *TransportRequest) (*RawResponse, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
