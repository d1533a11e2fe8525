package appstoreserver

import "testing"

func TestLookupErrorCode_Known(t *testing.T) {
	t.Parallel()
	code, ok := lookupErrorCode(4000006)
	if !ok {
		t.Fatal("lookupErrorCode(4000006) not recognized")
	}
	if code != ErrorCodeInvalidTransactionID {
		t.Errorf("code = %v, want ErrorCodeInvalidTransactionId", code)
	}
}

func TestLookupErrorCode_Unknown(t *testing.T) {
	t.Parallel()
	code, ok := lookupErrorCode(9999999)
	if ok {
		t.Error("lookupErrorCode(9999999) should not be recognized")
	}
	if code != ErrorCodeUnknown {
		t.Errorf("code = %v, want ErrorCodeUnknown", code)
	}
}

func TestLookupErrorCode_ZeroIsUnknown(t *testing.T) {
	t.Parallel()
	// 0 means the envelope carried no code; it must never map to a kind.
	if code, ok := lookupErrorCode(0); ok || code != ErrorCodeUnknown {
		t.Errorf("lookupErrorCode(0) = %v, %v; want ErrorCodeUnknown, false", code, ok)
	}
}

func TestAPIErrorCode_String(t *testing.T) {
	t.Parallel()
	if got := ErrorCodeTransactionIDNotFound.String(); got != "TransactionIdNotFound" {
		t.Errorf("String() = %q, want TransactionIdNotFound", got)
	}
	if got := APIErrorCode(1234).String(); got != "Unknown(1234)" {
		t.Errorf("String() = %q, want Unknown(1234)", got)
	}
}
