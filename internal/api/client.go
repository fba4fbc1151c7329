// Package api talks to the remote todos backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/model"
)

// DefaultBaseURL is the public students API the list was built against.
const DefaultBaseURL = "https://mate.academy/students-api"

// ErrFetch wraps every failure to retrieve a list: transport, status, decode.
var ErrFetch = errors.New("fetch todos")

// maxBody caps how much of a response we are willing to read.
const maxBody = 8 << 20

// Client reads todo lists over HTTP.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New builds a client rooted at baseURL (scheme and host required).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchAll returns every todo owned by userID, in backend order.
func (c *Client) FetchAll(ctx context.Context, userID int) ([]model.Todo, error) {
	endpoint := c.baseURL.JoinPath("todos")
	q := endpoint.Query()
	q.Set("userId", strconv.Itoa(userID))
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBody)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(body, 256))
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, resp.Status, strings.TrimSpace(string(snippet)))
	}

	var todos []model.Todo
	if err := json.NewDecoder(body).Decode(&todos); err != nil {
		return nil, fmt.Errorf("%w: json decode: %v", ErrFetch, err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}
