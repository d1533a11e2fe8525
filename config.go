package appstoreserver

import (
	"errors"
	"net/http"
	"time"
)

// Environment selects which of the two fixed API hosts a client targets.
// It is fixed at construction; there is no runtime switching.
type Environment string

const (
	// EnvironmentProduction targets the production App Store Server API.
	EnvironmentProduction Environment = "Production"
	// EnvironmentSandbox targets the sandbox App Store Server API.
	EnvironmentSandbox Environment = "Sandbox"
)

const (
	productionBaseURL = "https://api.storekit.itunes.apple.com"
	sandboxBaseURL    = "https://api.storekit-sandbox.itunes.apple.com"
)

// baseURL returns the host for the environment, or false for an
// unrecognized value.
func (e Environment) baseURL() (string, bool) {
	switch e {
	case EnvironmentProduction:
		return productionBaseURL, true
	case EnvironmentSandbox:
		return sandboxBaseURL, true
	}
	return "", false
}

// Config holds everything a Client needs. All identifier fields are
// required; they come from the App Store Connect Users and Access page.
type Config struct {
	// SigningKey is the PEM-encoded EC P-256 private key downloaded from
	// App Store Connect. A malformed key fails construction, not requests.
	SigningKey []byte

	// KeyID identifies the signing key (the JWT kid header).
	KeyID string

	// IssuerID is the App Store Connect issuer identifier.
	IssuerID string

	// BundleID is the app's bundle identifier (the JWT bid claim).
	BundleID string

	// Environment selects production or sandbox. Required.
	Environment Environment

	// HTTPClient is the transport requests are dispatched through. The
	// client never closes it except through Close. Defaults to a plain
	// http.Client when nil.
	HTTPClient *http.Client

	// Timeout bounds the network wait of each call. Required.
	Timeout time.Duration
}

func (c *Config) validate() error {
	if len(c.SigningKey) == 0 {
		return errors.New("signing key is required")
	}
	if c.KeyID == "" {
		return errors.New("key ID is required")
	}
	if c.IssuerID == "" {
		return errors.New("issuer ID is required")
	}
	if c.BundleID == "" {
		return errors.New("bundle ID is required")
	}
	if _, ok := c.Environment.baseURL(); !ok {
		return errors.New("environment must be Production or Sandbox")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}
