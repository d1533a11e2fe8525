package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxResponseBody caps how much of a response the client will read.
// Anything larger fails the request rather than buffering unbounded data.
const maxResponseBody = 1 << 20 // 1 MiB

// TokenSource signs a fresh bearer token for a request issued at now.
type TokenSource interface {
	Bearer(now time.Time) (string, error)
}

// Config holds the settings for an API client.
type Config struct {
	// BaseURL is the scheme and host all request paths are appended to.
	BaseURL string
	// UserAgent is sent on every request.
	UserAgent string
	// Tokens signs the Authorization bearer token, once per request.
	Tokens TokenSource
	// HTTPClient is the transport the client dispatches through.
	// Defaults to a plain http.Client.
	HTTPClient *http.Client
	// Timeout bounds the network wait of each request. Zero means no bound
	// beyond the caller's context.
	Timeout time.Duration
}

// Client executes requests against the App Store Server API. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	tokens     TokenSource
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient validates the config and returns a client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		tokens:     cfg.Tokens,
		httpClient: httpClient,
		timeout:    cfg.Timeout,
	}, nil
}

// Do executes one request: it builds the URL, signs a fresh bearer token,
// serializes the optional body, dispatches, and classifies the response.
// A non-nil result receives the decoded 2xx body.
//
// Query parameter values are emitted in insertion order per key and are
// never deduplicated; repeated keys are how the API expresses list filters.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("build request URL: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	bearer, err := c.tokens.Bearer(time.Now())
	if err != nil {
		return fmt.Errorf("sign request token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: u.String()}
	}
	defer resp.Body.Close()

	raw, err := readBody(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: u.String()}
	}

	return classify(resp.StatusCode, raw, result)
}

func readBody(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxResponseBody+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxResponseBody {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxResponseBody)
	}
	return raw, nil
}

// errorEnvelope is the JSON shape the API returns on failure. ErrorCode is
// a pointer so its absence is distinguishable from zero.
type errorEnvelope struct {
	ErrorCode    *int64 `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// classify turns a raw status and body into the pipeline's single outcome:
// nil on a decodable 2xx, *DecodeError on an undecodable 2xx, and *APIError
// for everything non-2xx. Unrecognized error codes still classify; only the
// envelope's absence degrades to a status-only failure.
func classify(status int, raw []byte, result any) error {
	if status >= 200 && status < 300 {
		if result == nil {
			return nil
		}
		if err := json.Unmarshal(raw, result); err != nil {
			return &DecodeError{Err: err}
		}
		return nil
	}

	apiErr := &APIError{StatusCode: status}
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.ErrorCode != nil {
		apiErr.ErrorCode = *envelope.ErrorCode
		apiErr.Message = envelope.ErrorMessage
	}
	return apiErr
}
