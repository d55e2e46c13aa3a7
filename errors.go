package mailrify

import (
	"errors"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrValidation matches every local precondition failure.
	ErrValidation = apierrors.ErrValidation

	// ErrNetwork is returned when no HTTP response was received.
	ErrNetwork = apierrors.ErrNetwork

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrRateLimited is returned for 429 responses once retries are spent.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrAPI matches every non-2xx response.
	ErrAPI = apierrors.ErrAPI

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRetriesExhausted is returned when the retry loop ends without an outcome.
	ErrRetriesExhausted = apierrors.ErrRetriesExhausted

	// ErrDecode is returned when a response body is not valid JSON or does
	// not fit the expected type.
	ErrDecode = apierrors.ErrDecode

	// ErrEncode is returned when a request body cannot be encoded.
	ErrEncode = apierrors.ErrEncode

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")
)

// ErrorKind is the category of a failure.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindUnknown    = apierrors.KindUnknown
	KindValidation = apierrors.KindValidation
	KindNetwork    = apierrors.KindNetwork
	KindAuth       = apierrors.KindAuth
	KindRateLimit  = apierrors.KindRateLimit
	KindAPI        = apierrors.KindAPI
	KindGeneric    = apierrors.KindGeneric
)

// APIError is a non-2xx response. Kind reports KindAuth for 401/403,
// KindRateLimit for 429 and KindAPI otherwise.
type APIError = apierrors.APIError

// NetworkError is a failure to obtain any HTTP response.
type NetworkError = apierrors.NetworkError

// ValidationError is a precondition failure detected before sending.
type ValidationError = apierrors.ValidationError

// Error is a failure that fits no other kind, such as an undecodable
// response or a cancelled retry wait.
type Error = apierrors.Error

// KindOf reports the kind of err, looking through wrapping.
func KindOf(err error) ErrorKind {
	return apierrors.KindOf(err)
}
