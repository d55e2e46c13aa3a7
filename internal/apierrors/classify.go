package apierrors

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HeaderRequestID is the response header carrying the server correlation id.
const HeaderRequestID = "X-Request-Id"

// Classify maps a terminal non-2xx response to a typed error.
// decoded is the JSON-decoded body (nil when empty); raw is the body as received.
func Classify(status int, decoded any, raw []byte, header http.Header, now time.Time) error {
	e := &APIError{
		ErrKind:    KindAPI,
		StatusCode: status,
		Message:    extractMessage(decoded, status),
		Code:       extractCode(decoded),
		RequestID:  HeaderValue(header, HeaderRequestID),
		Body:       decoded,
		RawBody:    raw,
		Header:     header,
	}
	if decoded == nil && len(raw) > 0 {
		e.Body = string(raw)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.ErrKind = KindAuth
	case status == http.StatusTooManyRequests:
		e.ErrKind = KindRateLimit
		if d, ok := ParseRetryAfter(header, now); ok {
			e.RetryAfter = d
		}
	}
	return e
}

func extractMessage(decoded any, status int) string {
	if obj, ok := decoded.(map[string]any); ok {
		for _, key := range []string{"error", "message"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("Mailrify API request failed with status %d.", status)
}

func extractCode(decoded any) string {
	if obj, ok := decoded.(map[string]any); ok {
		if s, ok := obj["code"].(string); ok {
			return s
		}
	}
	return ""
}

// HeaderValue returns the first value of the named header. The lookup is
// case-insensitive even for maps that were not built with canonical keys.
func HeaderValue(header http.Header, name string) string {
	if v := header.Get(name); v != "" {
		return v
	}
	for key, values := range header {
		if strings.EqualFold(key, name) && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

const maxRetryAfterSeconds = float64(math.MaxInt64 / int64(time.Second))

// ParseRetryAfter extracts the Retry-After header value.
// Supports both numeric seconds and HTTP-date formats; a date is only used
// when it lies in the future.
func ParseRetryAfter(header http.Header, now time.Time) (time.Duration, bool) {
	v := strings.TrimSpace(HeaderValue(header, "Retry-After"))
	if v == "" {
		return 0, false
	}

	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		if secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, false
		}
		// Saturate instead of overflowing Duration.
		if secs >= maxRetryAfterSeconds {
			return time.Duration(math.MaxInt64), true
		}
		return time.Duration(int64(secs)) * time.Second, true
	}

	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now).Truncate(time.Second); d > 0 {
			return d, true
		}
	}
	return 0, false
}
