package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
)

func TestSignInPersistsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(services.LoginResult{
			Token: "tok-abc",
			User:  models.User{Email: "admin@example.com", Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	creds := NewMemCredentialStore()
	sess := NewSession(New(Config{BaseURL: srv.URL, Credentials: creds}))

	if err := sess.SignIn(context.Background(), "admin@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	if !sess.IsAdmin() {
		t.Error("admin false after successful sign-in")
	}
	if token, _ := creds.Load(); token != "tok-abc" {
		t.Errorf("stored token = %q", token)
	}
}

func TestProbeFailureClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","message":"unauthorized"}`))
	}))
	defer srv.Close()

	creds := NewMemCredentialStore()
	creds.Save("stale-token")
	sess := NewSession(New(Config{BaseURL: srv.URL, Credentials: creds}))

	if sess.Probe(context.Background()) {
		t.Error("probe reported admin with a rejected token")
	}
	if token, _ := creds.Load(); token != "" {
		t.Errorf("stale token kept: %q", token)
	}
}

func TestProbeWithoutTokenSkipsNetwork(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer srv.Close()

	sess := NewSession(New(Config{BaseURL: srv.URL}))
	if sess.Probe(context.Background()) {
		t.Error("probe reported admin without a token")
	}
	if atomic.LoadInt64(&hits) != 0 {
		t.Error("tokenless probe hit the network")
	}
}

func TestSignOutAlwaysClears(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	creds := NewMemCredentialStore()
	creds.Save("tok")
	sess := NewSession(New(Config{BaseURL: srv.URL, Credentials: creds}))
	sess.mu.Lock()
	sess.admin = true
	sess.mu.Unlock()

	sess.SignOut(context.Background())

	if sess.IsAdmin() {
		t.Error("still admin after sign-out")
	}
	if token, _ := creds.Load(); token != "" {
		t.Errorf("token kept after sign-out: %q", token)
	}
}

func TestSignUpDisabledNoNetwork(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer srv.Close()

	sess := NewSession(New(Config{BaseURL: srv.URL}))
	err := sess.SignUp(context.Background(), "new@example.com", "pw")
	if !errors.Is(err, ErrRegistrationDisabled) {
		t.Errorf("error = %v, want ErrRegistrationDisabled", err)
	}
	if atomic.LoadInt64(&hits) != 0 {
		t.Error("sign-up contacted the backend")
	}
}
