package appstoreserver

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/appstoreserver/client-go/internal/api"
	"github.com/appstoreserver/client-go/internal/token"
)

// userAgent identifies this SDK on every request.
const userAgent = "app-store-server-go/1.2.0"

// Client is an App Store Server API client. Calls are stateless and may
// run concurrently against the same instance; the only shared state is the
// closed flag and the transport handle, which Close releases exactly once.
type Client struct {
	api  *api.Client
	http *http.Client

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// New validates the config, parses the signing key, and returns a client
// bound to the configured environment.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tokens, err := token.NewGenerator(cfg.SigningKey, cfg.KeyID, cfg.IssuerID, cfg.BundleID)
	if err != nil {
		return nil, fmt.Errorf("parse signing key: %w", err)
	}

	baseURL, _ := cfg.Environment.baseURL()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		Tokens:     tokens,
		HTTPClient: httpClient,
		Timeout:    cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:  apiClient,
		http: httpClient,
	}, nil
}

// checkClosed returns ErrClientClosed once Close has been called.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close marks the client closed and releases the transport's idle
// connections. It is safe to call more than once; the release happens
// exactly once. Calls made after Close return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.closeOnce.Do(func() {
		c.http.CloseIdleConnections()
	})
	return nil
}
