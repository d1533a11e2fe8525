// Package token issues the short-lived bearer tokens that authenticate
// every App Store Server API request.
//
// Tokens are only ever produced here. The package deliberately exposes no
// parse or verify API: the client signs requests, it never consumes its
// own output.
package token

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience is the fixed audience claim for all App Store Server API tokens.
const Audience = "appstoreconnect-v1"

// Lifetime is how long an issued token stays valid. The API rejects
// tokens with a longer expiry window.
const Lifetime = 5 * time.Minute

// Generator signs a fresh ES256 bearer token per request.
// It is immutable and safe for concurrent use.
type Generator struct {
	key      *ecdsa.PrivateKey
	keyID    string
	issuerID string
	bundleID string
}

// NewGenerator parses the PEM-encoded EC private key and returns a
// generator bound to the given App Store Connect identifiers.
func NewGenerator(signingKey []byte, keyID, issuerID, bundleID string) (*Generator, error) {
	key, err := parsePrivateKey(signingKey)
	if err != nil {
		return nil, err
	}
	return &Generator{
		key:      key,
		keyID:    keyID,
		issuerID: issuerID,
		bundleID: bundleID,
	}, nil
}

// parsePrivateKey accepts the PKCS#8 form App Store Connect issues keys in,
// plus the SEC1 form openssl tooling commonly converts them to.
func parsePrivateKey(pemData []byte) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("signing key is not PEM-encoded")
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		ecKey, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("signing key is %T, want an EC private key", key)
		}
		return ecKey, nil
	}

	key, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse EC private key: %w", err)
	}
	return key, nil
}

// Bearer returns a newly signed token for a request issued at now.
// Every request gets its own token; nothing is cached or reused.
func (g *Generator) Bearer(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss": g.issuerID,
		"iat": now.Unix(),
		"exp": now.Add(Lifetime).Unix(),
		"aud": Audience,
		"bid": g.bundleID,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	tok.Header["kid"] = g.keyID

	signed, err := tok.SignedString(g.key)
	if err != nil {
		return "", fmt.Errorf("sign bearer token: %w", err)
	}
	return signed, nil
}
