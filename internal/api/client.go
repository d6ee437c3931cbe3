package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the books collection endpoint of a locally running backend.
const DefaultBaseURL = "http://127.0.0.1:8000/api/livros"

// Client talks to the books REST API. It keeps no state between calls and is
// safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Client for the given books endpoint.
// If baseURL is empty, DefaultBaseURL is used.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		// Strip trailing slash for consistent URL building.
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the books endpoint the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// collectionURL is the endpoint for listing and creating books.
func (c *Client) collectionURL() string {
	return c.baseURL + "/"
}

// bookURL is the endpoint for a single book.
func (c *Client) bookURL(id int) string {
	return c.baseURL + "/" + strconv.Itoa(id)
}

// doJSON sends body (if any) as JSON and decodes a 200 response into out
// (if non-nil). op names the operation in returned errors.
func (c *Client) doJSON(op, method, url string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", op, err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("request_id", reqID),
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", append(fields, zap.Error(err))...)
		return &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	fields = append(fields,
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err := checkStatus(op, resp); err != nil {
		c.log.Warn("unexpected status", fields...)
		return err
	}
	c.log.Debug("request done", fields...)

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}

// checkStatus accepts exactly 200. Error bodies are drained, never parsed.
func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return &APIError{Op: op, StatusCode: resp.StatusCode}
}
