package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultBase = "http://localhost:8080/api"

// TokenCookie is the cookie the server sets at login; its value is attached
// as a bearer token on every request that follows.
const TokenCookie = "auth_token"

// APIError is a non-2xx response whose body carried a server-supplied
// {error} message. Message is shown to the user unmodified.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the shared HTTP core for the auth, plane and part services.
// It owns the cookie jar, so the session cookie set at login travels with
// every later request from any of the three services.
type Client struct {
	base string
	http *http.Client
}

// NewClient resolves the API base URL the same way the server's other
// clients do: prepend a scheme if missing, append /api if missing, fall
// back to the local default when rawBase is empty.
func NewClient(rawBase string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		base: ResolveBase(rawBase),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
}

func ResolveBase(raw string) string {
	if raw == "" {
		return defaultBase
	}
	u := raw
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	if !strings.HasSuffix(u, "/api") {
		u = u + "/api"
	}
	return u
}

// Base returns the resolved API base URL.
func (c *Client) Base() string {
	return c.base
}

// Token reads the session token from the auth_token cookie, if present.
func (c *Client) Token() string {
	u, err := url.Parse(c.base)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == TokenCookie {
			return ck.Value
		}
	}
	return ""
}

// ClearSession drops the auth_token cookie. Used on logout.
func (c *Client) ClearSession() {
	u, err := url.Parse(c.base)
	if err != nil {
		return
	}
	c.http.Jar.SetCookies(u, []*http.Cookie{{
		Name:   TokenCookie,
		Value:  "",
		MaxAge: -1,
	}})
}

// do issues one JSON request. body may be nil; out may be nil for calls
// whose response body is discarded. fallback is the generic message used
// when a failed response has no parseable {error} body.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
	}
	return nil
}

// decodeError prefers the server's {error} message, then the raw body,
// then the per-operation fallback.
func decodeError(status int, raw []byte, fallback string) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := fallback
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		msg = body.Error
	} else if s := strings.TrimSpace(string(raw)); s != "" && !strings.HasPrefix(s, "{") {
		msg = s
	}
	return &APIError{StatusCode: status, Message: msg}
}
