//go:build integration

// Package integration holds tests that run against the live sandbox
// environment. They need real App Store Connect credentials and are gated
// behind the integration build tag plus the environment variables below.
package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	appstoreserver "github.com/appstoreserver/client-go"
)

var (
	signingKeyPath string
	keyID          string
	issuerID       string
	bundleID       string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	signingKeyPath = os.Getenv("APP_STORE_SIGNING_KEY_PATH")
	keyID = os.Getenv("APP_STORE_KEY_ID")
	issuerID = os.Getenv("APP_STORE_ISSUER_ID")
	bundleID = os.Getenv("APP_STORE_BUNDLE_ID")

	for name, value := range map[string]string{
		"APP_STORE_SIGNING_KEY_PATH": signingKeyPath,
		"APP_STORE_KEY_ID":           keyID,
		"APP_STORE_ISSUER_ID":        issuerID,
		"APP_STORE_BUNDLE_ID":        bundleID,
	} {
		if value == "" {
			os.Stderr.WriteString("Skipping integration tests: " + name + " not set\n")
			os.Exit(0)
		}
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *appstoreserver.Client {
	t.Helper()

	signingKey, err := os.ReadFile(signingKeyPath)
	if err != nil {
		t.Fatalf("read signing key: %v", err)
	}

	client, err := appstoreserver.New(appstoreserver.Config{
		SigningKey:  signingKey,
		KeyID:       keyID,
		IssuerID:    issuerID,
		BundleID:    bundleID,
		Environment: appstoreserver.EnvironmentSandbox,
		Timeout:     30 * time.Second,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestTestNotificationRoundTrip(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sent, err := client.RequestTestNotification(ctx)
	if err != nil {
		t.Fatalf("RequestTestNotification() error = %v", err)
	}
	if sent.TestNotificationToken == "" {
		t.Fatal("test notification token is empty")
	}

	// Delivery status takes a moment to become queryable.
	time.Sleep(5 * time.Second)

	status, err := client.GetTestNotificationStatus(ctx, sent.TestNotificationToken)
	if err != nil {
		var apiErr *appstoreserver.APIError
		if errors.As(err, &apiErr) && apiErr.Code == appstoreserver.ErrorCodeTestNotificationNotFound {
			t.Skip("test notification not yet visible; delivery is asynchronous")
		}
		t.Fatalf("GetTestNotificationStatus() error = %v", err)
	}
	if status.SignedPayload == "" {
		t.Error("signed payload is empty")
	}
}

func TestTransactionHistory_UnknownTransaction(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err := client.GetTransactionHistory(ctx, "0", nil, appstoreserver.TransactionHistoryV2)
	var apiErr *appstoreserver.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError for an unknown transaction", err)
	}
	if apiErr.RawErrorCode == 0 {
		t.Errorf("RawErrorCode = 0, want a decoded envelope code (got status %d)", apiErr.StatusCode)
	}
}
