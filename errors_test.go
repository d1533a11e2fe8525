package appstoreserver

import (
	"errors"
	"strings"
	"testing"

	"github.com/appstoreserver/client-go/internal/api"
)

func TestWrapError_ClassifiesKnownCode(t *testing.T) {
	t.Parallel()
	err := wrapError(&api.APIError{
		StatusCode: 404,
		ErrorCode:  4040010,
		Message:    "Transaction id not found.",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("wrapError() = %T, want *APIError", err)
	}
	if apiErr.Code != ErrorCodeTransactionIDNotFound {
		t.Errorf("Code = %v, want ErrorCodeTransactionIDNotFound", apiErr.Code)
	}
	if !strings.Contains(apiErr.Error(), "TransactionIdNotFound") {
		t.Errorf("Error() = %q, want classified kind in message", apiErr.Error())
	}
}

func TestWrapError_UnknownCode(t *testing.T) {
	t.Parallel()
	err := wrapError(&api.APIError{StatusCode: 400, ErrorCode: 9999999})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("wrapError() = %T, want *APIError", err)
	}
	if apiErr.RawErrorCode != 9999999 {
		t.Errorf("RawErrorCode = %d, want 9999999", apiErr.RawErrorCode)
	}
	if apiErr.Code != ErrorCodeUnknown {
		t.Errorf("Code = %v, want ErrorCodeUnknown", apiErr.Code)
	}
}

func TestWrapError_Network(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := wrapError(&api.NetworkError{Err: cause, URL: "https://example.com"})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("wrapError() = %T, want *NetworkError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
}

func TestWrapError_Decode(t *testing.T) {
	t.Parallel()
	cause := errors.New("unexpected end of JSON input")
	err := wrapError(&api.DecodeError{Err: cause})

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("wrapError() = %T, want *DecodeError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("DecodeError should unwrap to its cause")
	}
}

func TestWrapError_PassThrough(t *testing.T) {
	t.Parallel()
	if err := wrapError(nil); err != nil {
		t.Errorf("wrapError(nil) = %v, want nil", err)
	}
	plain := errors.New("something else")
	if err := wrapError(plain); err != plain {
		t.Errorf("wrapError() = %v, want the error unchanged", err)
	}
}

func TestAPIError_Retryable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code APIErrorCode
		want bool
	}{
		{ErrorCodeAccountNotFoundRetryable, true},
		{ErrorCodeAppNotFoundRetryable, true},
		{ErrorCodeOriginalTransactionIDNotFoundRetryable, true},
		{ErrorCodeRateLimitExceeded, true},
		{ErrorCodeGeneralInternalRetryable, true},
		{ErrorCodeGeneralInternal, false},
		{ErrorCodeInvalidTransactionID, false},
		{ErrorCodeUnknown, false},
	}
	for _, tt := range tests {
		err := &APIError{Code: tt.code}
		if got := err.Retryable(); got != tt.want {
			t.Errorf("Retryable(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
