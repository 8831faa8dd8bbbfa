package api

import (
	"context"
	"fmt"
	"net/http"
)

type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type authResponse struct {
	User User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, name, password string) (*User, error) {
	var resp authResponse
	err := s.c.do(ctx, http.MethodPost, "/users/login", loginRequest{Name: name, Password: password}, &resp, "Login failed")
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account. The server assigns role "user" regardless of
// what the caller selected, so no role field is sent.
func (s *AuthService) Register(ctx context.Context, name, password string) (*User, error) {
	var user User
	err := s.c.do(ctx, http.MethodPost, "/users/register", loginRequest{Name: name, Password: password}, &user, "Registration failed")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/users/logout", nil, nil, "Logout failed")
	s.c.ClearSession()
	return err
}

// CurrentUser returns the session's user, or nil when the session is not
// valid. Errors are deliberately folded into nil: the caller only needs to
// know whether to show the login screen.
func (s *AuthService) CurrentUser(ctx context.Context) *User {
	var users []User
	if err := s.c.do(ctx, http.MethodGet, "/users", nil, &users, "Failed to get current user"); err != nil {
		return nil
	}
	if len(users) == 0 {
		return nil
	}
	return &users[0]
}

func (s *AuthService) UserByID(ctx context.Context, id int) (*User, error) {
	var user User
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user, "Failed to get user")
	if err != nil {
		return nil, err
	}
	return &user, nil
}
