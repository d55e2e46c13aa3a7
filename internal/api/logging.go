package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

const redactedAuth = "Bearer ***"

// newDebugLogger is the logger used when debug is on and none was supplied.
func newDebugLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("component", "mailrify").Logger()
}

// sanitizeHeaders flattens h for logging with credentials masked.
func sanitizeHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		switch strings.ToLower(name) {
		case "authorization":
			out[name] = redactedAuth
		case "x-api-key", "cookie":
			out[name] = "***"
		default:
			out[name] = strings.Join(values, ", ")
		}
	}
	return out
}

func (c *Client) logExchange(req *TransportRequest, resp *RawResponse, attempts int, elapsed time.Duration) {
	if !c.debugEnabled() {
		return
	}
	reqLen := -1
	if req.Body != nil {
		reqLen = len(req.Body)
	}
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode).
		Int("attempts", attempts).
		Dur("elapsed", elapsed).
		Interface("request_headers", sanitizeHeaders(req.Header)).
		Int("request_body_length", reqLen).
		Int("response_body_length", len(resp.Body)).
		Str("request_id", apierrors.HeaderValue(resp.Header, HeaderRequestID)).
		Msg("mailrify request completed")
}

func (c *Client) logRetry(req *TransportRequest, attempt int, reason string, delay time.Duration, err error) {
	if !c.debugEnabled() {
		return
	}
	ev := c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("attempt", attempt+1).
		Str("reason", reason).
		Dur("delay", delay)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("retrying mailrify request")
}

func (c *Client) logFailure(req *TransportRequest, attempts int, err error) {
	if !c.debugEnabled() {
		return
	}
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("attempts", attempts).
		Err(err).
		Msg("mailrify request failed")
}

func (c *Client) debugEnabled() bool {
	return c.config.Debug && c.logger.GetLevel() <= zerolog.DebugLevel
}
