package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the platform API endpoint used when an environment does
// not override it.
const DefaultBaseURL = "https://cloud.fermyon.com"

const requestTimeout = 30 * time.Second

// ErrNotFound is returned when the API answers 404 for a resource lookup.
var ErrNotFound = errors.New("resource not found")

// Client talks to the platform HTTP API.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	token      string
}

// ClientOption allows customizing the Client.
type ClientOption func(*Client)

// WithBaseURL sets the API base URL. Ignored when empty.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		if base != "" {
			c.base, _ = url.Parse(base)
		}
	}
}

// WithToken sets the bearer token used for authenticated requests.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient overrides the underlying HTTP client. Mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new platform API client with the given options.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	for _, opt := range opts {
		opt(c)
	}

	if c.base == nil {
		c.base, _ = url.Parse(DefaultBaseURL)
	}
	if c.base == nil || c.base.Host == "" {
		return nil, fmt.Errorf("invalid platform API base URL")
	}

	if c.httpClient == nil {
		c.httpClient = cleanhttp.DefaultClient()
		c.httpClient.Timeout = requestTimeout
	}

	// Bearer auth rides on an oauth2 transport so every request picks up
	// the token without each call site touching headers.
	if c.token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token, TokenType: "Bearer"})
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
		c.httpClient = oauth2.NewClient(ctx, src)
	}

	return c, nil
}

// BaseURL returns the API base URL the client is bound to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// apiError is a non-2xx response from the API.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("platform API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("platform API returned status %d: %s", e.StatusCode, e.Body)
}

// do issues a request and decodes the JSON response into out (when non-nil).
// A 404 is mapped to ErrNotFound so callers can branch on absence.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.base
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", u.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", u.Path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apiError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", u.Path, err)
	}

	return nil
}
