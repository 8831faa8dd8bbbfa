package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveBase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "http://localhost:8080/api"},
		{"myhost:9000", "http://myhost:9000/api"},
		{"http://example.com", "http://example.com/api"},
		{"https://example.com/api", "https://example.com/api"},
		{"example.com/api", "http://example.com/api"},
	}
	for _, c := range cases {
		if got := ResolveBase(c.in); got != c.want {
			t.Errorf("ResolveBase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestServerErrorMessagePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"tail_number already exists"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := NewPlaneService(c).Create(context.Background(), CreatePlaneRequest{TailNumber: "N1", Model: "X"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "tail_number already exists" {
		t.Errorf("message = %q, want the server's message verbatim", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
}

func TestFallbackMessageWhenBodyUnparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"not_error":"x"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := NewPlaneService(c).Update(context.Background(), 1, UpdatePlaneRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Failed to update plane" {
		t.Errorf("got %q, want the per-operation fallback", err.Error())
	}
}

func TestPlainTextErrorBodyUsedAsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("session expired"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := NewAuthService(c).Login(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "session expired" {
		t.Errorf("got %q, want the raw body", err.Error())
	}
}

func TestBearerTokenFromCookieAttached(t *testing.T) {
	var sawAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: TokenCookie, Value: "tok-123", Path: "/"})
		w.Write([]byte(`{"user":{"id":1,"name":"amy","role":"user"}}`))
	})
	mux.HandleFunc("/api/planes", func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := NewAuthService(c).Login(context.Background(), "amy", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := c.Token(); got != "tok-123" {
		t.Fatalf("Token() = %q, want the cookie value", got)
	}
	if _, err := NewPlaneService(c).All(context.Background()); err != nil {
		t.Fatalf("list planes: %v", err)
	}
	if sawAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want bearer from the auth_token cookie", sawAuth)
	}

	c.ClearSession()
	if got := c.Token(); got != "" {
		t.Errorf("Token() after ClearSession = %q, want empty", got)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	var sawID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := NewPartService(c).All(context.Background()); err != nil {
		t.Fatalf("list parts: %v", err)
	}
	if sawID == "" {
		t.Error("expected an X-Request-ID header on the request")
	}
}
