// Package authclient is a small API client for the dashboard's session
// endpoints. It keeps the session cookie in a jar and caches the last
// /api/auth/check answer so route guards can decide without a network call.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"webuild-dashboard/internal/data/entity"
)

// Session is the authenticated user as reported by the server.
type Session struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Role          entity.Role `json:"role"`
	EmailVerified bool        `json:"emailVerified"`
}

type Client struct {
	base string
	http *http.Client

	mu      sync.RWMutex
	session *Session
	loaded  bool
}

func NewClient(baseURL string) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}

	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type checkPayload struct {
	Authenticated bool     `json:"authenticated"`
	User          *Session `json:"user,omitempty"`
}

// Login authenticates and caches the returned session snapshot. The session
// cookie lands in the jar.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}

	var payload checkPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &payload); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = payload.User
	c.loaded = true
	c.mu.Unlock()

	return payload.User, nil
}

// Logout revokes the server-side session and drops the cached snapshot.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.session = nil
	c.loaded = true
	c.mu.Unlock()

	return nil
}

// Refresh asks the server who the cookie belongs to and updates the cache.
// An anonymous answer is not an error.
func (c *Client) Refresh(ctx context.Context) (*Session, error) {
	var payload checkPayload
	if err := c.do(ctx, http.MethodGet, "/api/auth/check", nil, &payload); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if payload.Authenticated {
		c.session = payload.User
	} else {
		c.session = nil
	}
	c.loaded = true
	c.mu.Unlock()

	sess, _ := c.Session()
	return sess, nil
}

// Session returns the cached snapshot. The second return value is false until
// the first Login, Logout or Refresh completes.
func (c *Client) Session() (*Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session, c.loaded
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}

	return nil
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}
