// Package apierrors provides the error taxonomy shared by the Mailrify client
// and the classifier that maps terminal HTTP outcomes onto it.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrValidation matches every local precondition failure.
	ErrValidation = errors.New("validation failed")

	// ErrNetwork matches failures where no HTTP response was received.
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned when the API key is rejected (401 or 403).
	ErrUnauthorized = errors.New("invalid or unauthorized API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAPI matches every non-2xx response from the API.
	ErrAPI = errors.New("API error")

	// ErrRetriesExhausted is returned when the attempt loop ends without an outcome.
	ErrRetriesExhausted = errors.New("exceeded maximum retry attempts")

	// ErrEncode is returned when a request body cannot be encoded as JSON.
	ErrEncode = errors.New("unable to encode payload as JSON")

	// ErrDecode is returned when a response body is not valid JSON.
	ErrDecode = errors.New("unable to decode JSON response")
)

// Kind identifies the family an error belongs to.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in the client.
	KindUnknown Kind = iota
	// KindValidation is a local precondition failure; the network was not touched.
	KindValidation
	// KindNetwork means the transport never produced an HTTP response.
	KindNetwork
	// KindAuth is a 401 or 403 response.
	KindAuth
	// KindRateLimit is a 429 response.
	KindRateLimit
	// KindAPI is any other non-2xx response.
	KindAPI
	// KindGeneric covers retry exhaustion, JSON failures and cancellation.
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindAPI:
		return "api"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// KindOf reports the Kind of err, looking through wrapped errors.
// It returns KindUnknown for nil or foreign errors.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// APIError represents a non-2xx HTTP response from the Mailrify API.
// Kind is KindAuth, KindRateLimit or KindAPI.
type APIError struct {
	ErrKind    Kind
	StatusCode int
	Message    string
	// Code is the machine-readable "code" field of the response body, if any.
	Code      string
	RequestID string
	// Body is the decoded JSON body, or the raw body as a string when it
	// could not be decoded into a value.
	Body    any
	RawBody []byte
	Header  http.Header
	// RetryAfter is the server's Retry-After hint for rate limited responses.
	// Zero when the header was absent or unusable.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Kind returns the error family.
func (e *APIError) Kind() Kind {
	if e.ErrKind == KindUnknown {
		return KindAPI
	}
	return e.ErrKind
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrUnauthorized:
		return e.Kind() == KindAuth
	case ErrRateLimited:
		return e.Kind() == KindRateLimit
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err      error
	Method   string
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error while contacting the Mailrify API: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Kind returns KindNetwork.
func (e *NetworkError) Kind() Kind { return KindNetwork }

// Is implements errors.Is for sentinel error matching.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ValidationError contains one or more local validation failures.
type ValidationError struct {
	Errors []string
}

// NewValidationError returns a ValidationError with a single formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Errors: []string{fmt.Sprintf(format, args...)}}
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Kind returns KindValidation.
func (e *ValidationError) Kind() Kind { return KindValidation }

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Error is the generic client failure: retry exhaustion, JSON encoding or
// decoding problems, and cancellation while waiting between attempts.
type Error struct {
	Message string
	// Sentinel classifies the failure for errors.Is (ErrDecode, ErrEncode, ...).
	Sentinel error
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Kind returns KindGeneric.
func (e *Error) Kind() Kind { return KindGeneric }

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	return e.Sentinel != nil && target == e.Sentinel
}
