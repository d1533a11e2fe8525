package api

import "fmt"

// APIError is a non-2xx response from the App Store Server API.
// ErrorCode is the raw numeric code from the error envelope, 0 when the
// body carried no envelope (an opaque HTTP failure).
type APIError struct {
	StatusCode int
	ErrorCode  int64
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("API error %d (code %d): %s", e.StatusCode, e.ErrorCode, e.Message)
		}
		return fmt.Sprintf("API error %d (code %d)", e.StatusCode, e.ErrorCode)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError is a transport-level failure: connection error, timeout, or
// an oversized response body. No HTTP status is available.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is a 2xx response whose body did not match the expected
// shape. The response was accepted by the server but is unusable.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
