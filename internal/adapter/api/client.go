package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/storykeep/storykeep/errors"
)

const defaultRequestTimeout = 15 * time.Second

// Client talks to the story archive backend. It is an explicit context object:
// the bearer token lives here, not in module-level state, and its lifecycle is
// driven through SetToken/ClearToken.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the backend at baseURL. The HTTP timeout
// bounds every request, including each individual status poll.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SetToken installs the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer token, e.g. on logout
func (c *Client) ClearToken() {
	c.SetToken("")
}

// newRequest builds a request against the backend with auth attached
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// envelope is the standard response wrapper used by the backend for story
// endpoints. The status endpoint returns its body bare, see status.go.
type envelope struct {
	Code    int             `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// do executes the request and decodes the enveloped payload into out when out
// is non-nil. HTTP status codes map into the module error taxonomy so callers
// (the poller in particular) can tell auth rejections from transient failures.
func (c *Client) do(req *http.Request, operation string, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.ErrTransport(operation, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, operation); err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.ErrResponseDecode(operation, err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.ErrResponseDecode(operation, err)
	}
	return nil
}

func (c *Client) checkStatus(resp *http.Response, operation string) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if c.logger != nil {
			c.logger.Warn("backend rejected credentials",
				zap.String("operation", operation),
				zap.Int("status", resp.StatusCode))
		}
		return errors.ErrTokenRejected()
	case resp.StatusCode == http.StatusNotFound:
		return errors.ErrNotFound(operation)
	default:
		return errors.ErrTransport(operation,
			fmt.Errorf("backend returned status %d", resp.StatusCode))
	}
}
