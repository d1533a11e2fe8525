package appstoreserver

import (
	"errors"
	"fmt"

	"github.com/appstoreserver/client-go/internal/api"
)

// ErrClientClosed is returned when operations are attempted on a closed client.
var ErrClientClosed = errors.New("client has been closed")

// AppStoreServerError is implemented by all SDK errors.
type AppStoreServerError interface {
	error
	AppStoreServerError() // marker method
}

// APIError represents a non-2xx response from the App Store Server API.
//
// RawErrorCode is the numeric errorCode from the response envelope, 0 when
// the body carried none (an opaque HTTP failure). Code is the classified
// kind when RawErrorCode is a recognized value, ErrorCodeUnknown otherwise;
// unrecognized codes never fail, they only fail to classify.
type APIError struct {
	StatusCode   int
	RawErrorCode int64
	Code         APIErrorCode
	Message      string
}

func (e *APIError) Error() string {
	if e.RawErrorCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
		}
		return fmt.Sprintf("API error %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Retryable reports whether the API marked this failure as transient. It
// is a hint for the caller's retry policy, not a guarantee; the SDK itself
// never retries.
func (e *APIError) Retryable() bool {
	switch e.Code {
	case ErrorCodeAccountNotFoundRetryable,
		ErrorCodeAppNotFoundRetryable,
		ErrorCodeOriginalTransactionIDNotFoundRetryable,
		ErrorCodeRateLimitExceeded,
		ErrorCodeGeneralInternalRetryable:
		return true
	}
	return false
}

// AppStoreServerError implements the AppStoreServerError interface.
func (e *APIError) AppStoreServerError() {}

// NetworkError represents a transport-level failure: connection error,
// timeout, or an oversized response body. No HTTP status is available.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AppStoreServerError implements the AppStoreServerError interface.
func (e *NetworkError) AppStoreServerError() {}

// DecodeError represents a 2xx response whose body did not match the
// expected shape. The request was accepted but the response is unusable.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AppStoreServerError implements the AppStoreServerError interface.
func (e *DecodeError) AppStoreServerError() {}

// wrapError converts internal pipeline errors to the public surface.
// Classification of raw error codes into known kinds happens here so the
// pipeline never has to know the code table.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		code, _ := lookupErrorCode(apiErr.ErrorCode)
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			RawErrorCode: apiErr.ErrorCode,
			Code:         code,
			Message:      apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{Err: decErr.Err}
	}

	return err
}
