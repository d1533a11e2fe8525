// Package appstoreserver provides a Go client for the App Store Server
// API: subscription statuses, transaction history and lookup, refund
// history, renewal-date extensions, consumption data, and server
// notification history.
//
// Every request is authenticated with a freshly signed five-minute ES256
// bearer token; tokens are never cached or reused. The client targets one
// fixed environment (production or sandbox) chosen at construction.
//
// Basic usage:
//
//	signingKey, err := os.ReadFile("SubscriptionKey_ABC123DEFG.p8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := appstoreserver.New(appstoreserver.Config{
//	    SigningKey:  signingKey,
//	    KeyID:       "ABC123DEFG",
//	    IssuerID:    "57246542-96fe-1a63-e053-0824d011072a",
//	    BundleID:    "com.example.app",
//	    Environment: appstoreserver.EnvironmentSandbox,
//	    Timeout:     30 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	statuses, err := client.GetAllSubscriptionStatuses(ctx, "1000000123456789")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Failures are plain return values. Non-2xx responses surface as
// [*APIError] carrying the HTTP status, the raw numeric error code from
// the response envelope, and a classified [APIErrorCode] when the code is
// recognized; transport failures surface as [*NetworkError]; a 2xx
// response that does not match the expected shape surfaces as
// [*DecodeError]. The client never retries; [APIError.Retryable] is a
// hint for the caller's own retry policy.
//
//	var apiErr *appstoreserver.APIError
//	if errors.As(err, &apiErr) && apiErr.Retryable() {
//	    // back off and try again
//	}
package appstoreserver
