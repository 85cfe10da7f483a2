// Package jawaly is a client for the 4jawaly SMS gateway REST API.
//
// It covers sending SMS messages (including chunked parallel bulk sends),
// reading the account balance and listing approved sender names. All calls
// authenticate with HTTP Basic auth built from the API key/secret pair.
package jawaly

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production endpoint of the 4jawaly API.
const DefaultBaseURL = "https://api-sms.4jawaly.com/api/v1"

// defaultTimeout bounds a single HTTP call when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

var (
	// ErrMissingCredentials is returned by New when the API key or secret is empty.
	ErrMissingCredentials = errors.New("api key and api secret are required")
	// ErrMissingSender is returned by New when no default sender name is given.
	ErrMissingSender = errors.New("sender name is required")
)

// Config carries the credentials and connection settings for a Client.
// It is read once by New; changing it afterwards has no effect on the client.
type Config struct {
	APIKey    string
	APISecret string

	// Sender is the approved sender name attached to outgoing messages.
	Sender string

	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// HTTPClient overrides the default client (defaultTimeout applied).
	HTTPClient *http.Client
}

// Client talks to the 4jawaly gateway. It is safe for concurrent use.
type Client struct {
	baseURL    string
	sender     string
	authHeader string
	httpClient *http.Client
}

// New validates cfg and builds a Client. Credentials and sender are required;
// everything else falls back to defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.APISecret) == "" {
		return nil, ErrMissingCredentials
	}
	if strings.TrimSpace(cfg.Sender) == "" {
		return nil, ErrMissingSender
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	credentials := cfg.APIKey + ":" + cfg.APISecret
	authHash := base64.StdEncoding.EncodeToString([]byte(credentials))

	return &Client{
		baseURL:    baseURL,
		sender:     cfg.Sender,
		authHeader: "Basic " + authHash,
		httpClient: httpClient,
	}, nil
}

// Sender returns the default sender name the client was configured with.
func (c *Client) Sender() string {
	return c.sender
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// newRequest builds a request against the given API endpoint with the
// standard headers (JSON content negotiation + Basic auth) applied.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, params url.Values, body any) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	return req, nil
}

// do executes the request and returns the status code with the raw body.
// Transport failures are reported as errors; HTTP-level failures are left
// to the caller, which knows whether a non-200 is fatal for its operation.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return 0, nil, fmt.Errorf("request timeout or canceled: %w", err)
		}
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, raw, nil
}

// getJSON performs a GET against endpoint and decodes a 2xx response into out.
// Any transport failure, non-2xx status or schema mismatch is a hard error.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	ctx, cancel := withTimeout(ctx, defaultTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}

	status, raw, err := c.do(req)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return fmt.Errorf("gateway returned non-2xx status: %d", status)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}

	return nil
}

// GetBalance fetches the account balance together with the active packages.
func (c *Client) GetBalance(ctx context.Context) (*BalanceResponse, error) {
	params := url.Values{}
	params.Set("is_active", "1")
	params.Set("order_by", "id")
	params.Set("order_by_type", "desc")
	params.Set("page", "1")
	params.Set("page_size", "10")
	params.Set("return_collection", "1")

	var out BalanceResponse
	if err := c.getJSON(ctx, "account/area/me/packages", params, &out); err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &out, nil
}

// GetSenders fetches the approved sender names registered on the account.
func (c *Client) GetSenders(ctx context.Context) (*SenderNamesResponse, error) {
	params := url.Values{}
	params.Set("page_size", "10")
	params.Set("page", "1")
	params.Set("status", "1")
	params.Set("sender_name", "")
	params.Set("is_ad", "")
	params.Set("return_collection", "1")

	var out SenderNamesResponse
	if err := c.getJSON(ctx, "account/area/senders", params, &out); err != nil {
		return nil, fmt.Errorf("failed to get senders: %w", err)
	}

	return &out, nil
}
