// Package upstream holds the typed clients for the travel-content backend
// API. Each resource client exposes list/get/create/update/delete mapped 1:1
// to REST endpoints, unwraps {"data": ...} envelopes transparently, attaches
// the bearer token when a session is present, and normalizes every failure
// into *Error. GET responses pass through a short-TTL cache that is flushed
// on every mutation, so list views always re-fetch fresh data after a write.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/config"
	"github.com/travel-content-admin/internal/session"
)

// Client is the shared HTTP core behind all resource clients
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
	cache    *gocache.Cache
	log      zerolog.Logger
}

// NewClient creates the shared client core. The session store is passed in
// explicitly; there is no ambient auth state.
func NewClient(cfg *config.UpstreamConfig, sessions *session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		sessions: sessions,
		cache:    gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		log:      log.With().Str("component", "upstream").Logger(),
	}
}

// get performs a cached GET and returns the raw response body
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if cached, ok := c.cache.Get(path); ok {
		return cached.([]byte), nil
	}

	body, err := c.roundTrip(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(path, body)
	return body, nil
}

// send performs a mutating request and flushes the GET cache so subsequent
// reads never see stale data
func (c *Client) send(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	body, err := c.roundTrip(ctx, method, path, reqBody)
	c.cache.Flush()
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, reqBody io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read response: %v", err), Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Invalidate local auth state; the caller is expected to redirect
		// to sign-in.
		if clearErr := c.sessions.Clear(); clearErr != nil {
			c.log.Error().Err(clearErr).Msg("Failed to clear session after 401")
		}
		return nil, newError(resp.StatusCode, body)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Upstream request failed")
		return nil, newError(resp.StatusCode, body)
	}

	return body, nil
}

// envelope is the optional {"data": ...} wrapper some endpoints use
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeList normalizes a bare array response or a {"data": [...]} envelope
// into a plain slice. An unexpected shape yields an empty slice so list
// views stay resilient to backend contract drift.
func decodeList[T any](c *Client, body []byte) []T {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, &items); err == nil {
			return items
		}
	}

	c.log.Warn().Msg("Unexpected list response shape, returning empty list")
	return []T{}
}

// decodeOne normalizes a bare object response or a {"data": {...}} envelope
// into the resource type. A shape matching neither is a typed error, not a
// silent fallthrough.
func decodeOne[T any](body []byte) (*T, error) {
	raw := body
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		raw = env.Data
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, &Error{Message: "unexpected response shape from backend", Data: string(body)}
	}
	return &item, nil
}

// getList fetches and normalizes a list endpoint
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[T](c, body), nil
}

// getOne fetches and normalizes a single-resource endpoint
func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](body)
}

// createOne POSTs a payload and decodes the created resource
func createOne[T any](ctx context.Context, c *Client, path string, payload interface{}) (*T, error) {
	body, err := c.send(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](body)
}

// updateOne PATCHes a partial payload and decodes the updated resource
func updateOne[T any](ctx context.Context, c *Client, path string, payload interface{}) (*T, error) {
	body, err := c.send(ctx, http.MethodPatch, path, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](body)
}

// deleteOne issues a DELETE; success is the absence of an error
func deleteOne(ctx context.Context, c *Client, path string) error {
	_, err := c.send(ctx, http.MethodDelete, path, nil)
	return err
}
