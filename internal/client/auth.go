package client

import (
	"context"
	"errors"
	"sync"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
)

// ErrRegistrationDisabled is returned by SignUp without touching the network.
var ErrRegistrationDisabled = errors.New("registration is disabled for this portfolio")

// Session tracks whether the stored token currently grants admin access.
// Admin is derived solely from a successful probe or sign-in, never assumed.
type Session struct {
	c *Client

	mu    sync.Mutex
	admin bool
	user  *models.User
}

func NewSession(c *Client) *Session {
	return &Session{c: c}
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Probe checks the stored token against the current-user endpoint. Any
// failure clears the token and leaves the session signed out.
func (s *Session) Probe(ctx context.Context) bool {
	token, err := s.c.creds.Load()
	if err != nil || token == "" {
		s.reset()
		return false
	}

	var u models.User
	if err := s.c.get(ctx, "/user", &u); err != nil {
		_ = s.c.creds.Clear()
		s.reset()
		return false
	}

	s.mu.Lock()
	s.admin = true
	s.user = &u
	s.mu.Unlock()
	return true
}

func (s *Session) SignIn(ctx context.Context, email, password string) error {
	var out services.LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := s.c.post(ctx, "/login", body, &out); err != nil {
		return err
	}
	if err := s.c.creds.Save(out.Token); err != nil {
		return err
	}

	s.mu.Lock()
	s.admin = true
	s.user = &out.User
	s.mu.Unlock()
	return nil
}

// SignOut tells the backend to revoke the token but succeeds locally even
// when that call fails.
func (s *Session) SignOut(ctx context.Context) {
	_ = s.c.post(ctx, "/logout", nil, nil)
	_ = s.c.creds.Clear()
	s.reset()
}

// SignUp never contacts the backend.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	return ErrRegistrationDisabled
}

func (s *Session) reset() {
	s.mu.Lock()
	s.admin = false
	s.user = nil
	s.mu.Unlock()
}
