// Package api provides HTTP client functionality for communicating with the
// Mailrify API. It handles authentication, request/response serialization,
// and automatic retry logic with exponential backoff for transient failures.
//
// # Client Creation
//
// [NewClient] validates a [Config] and applies functional options such as
// [WithTransport], [WithLogger] and [WithLimiter]. The API key is sent as a
// bearer token on every request.
//
// # Retry Behavior
//
// Only GET and HEAD requests are retried. They are retried up to
// [Config.MaxRetries] times when the transport fails or the service answers
// with 429 Too Many Requests or any 5xx status. POST, PUT, PATCH and DELETE
// are sent exactly once.
//
// The delay starts at 500ms and doubles after every retry. A Retry-After
// header, given either as seconds or as an HTTP date in the future, replaces
// the computed delay for that retry.
//
// # Error Handling
//
// Terminal failures are reported with the types in the apierrors package:
// validation errors before anything is sent, network errors when no response
// arrived, and API errors classified by status. Use errors.Is with the
// sentinels or errors.As with the concrete types:
//
//	var apiErr *apierrors.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
//	    // Handle missing resource
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
