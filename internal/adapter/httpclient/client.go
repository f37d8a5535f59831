// Package httpclient is the thin JSON client every adapter goes through.
// It only returns an error when the request could not complete; any HTTP
// status, 4xx and 5xx included, is reported through Response.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMaxBodyBytes caps a response body when Config.MaxBodyBytes is unset
const DefaultMaxBodyBytes = 10 << 20

var ErrBodyTooLarge = errors.New("response body too large")

type Response struct {
	Data       json.RawMessage
	Status     int
	StatusText string
	OK         bool
}

// HasData reports whether the upstream answered 2xx with a non-null body
func (r *Response) HasData() bool {
	if r == nil || !r.OK {
		return false
	}
	trimmed := bytes.TrimSpace(r.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// RatePerSecond caps outgoing requests, 0 disables the limit
	RatePerSecond float64
	Burst         int
	MaxBodyBytes  int64
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	maxBody int64
}

func New(cfg Config) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		maxBody: cfg.MaxBodyBytes,
	}
	if c.maxBody <= 0 {
		c.maxBody = DefaultMaxBodyBytes
	}
	if cfg.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1))
	}
	return c
}

type tokenKey struct{}

// WithBearerToken makes requests issued with ctx authenticate as the caller
// instead of using the configured service token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit %s %s: %w", method, path, err)
		}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if int64(len(data)) > c.maxBody {
		return nil, fmt.Errorf("read %s %s: %w", method, path, ErrBodyTooLarge)
	}

	return &Response{
		Data:       data,
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
	}, nil
}

func (c *Client) bearerToken(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		return token
	}
	return c.token
}
