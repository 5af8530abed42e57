package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the local dev server origin. The /api suffix is appended
// during normalization.
const DefaultBaseURL = "http://127.0.0.1:8080"

const requestTimeout = 10 * time.Second

// Provider names accepted by Config.Provider / PORTFOLIO_API_PROVIDER.
const (
	ProviderREST   = "rest"
	ProviderStatic = "static" // serve the built-in dataset, no network
)

type Config struct {
	// BaseURL is the API origin. Empty falls back to PORTFOLIO_API_URL, then
	// to DefaultBaseURL. A trailing /api is appended when missing, never
	// doubled.
	BaseURL string
	// Provider picks the backing data source for read paths. Empty falls
	// back to PORTFOLIO_API_PROVIDER, then to ProviderREST.
	Provider string

	Credentials CredentialStore
	Log         *logrus.Logger
	HTTPClient  *http.Client
}

// APIError is a non-2xx backend answer, body preserved verbatim.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, strings.TrimSpace(e.Body))
}

type Client struct {
	base     string
	provider string
	http     *http.Client
	creds    CredentialStore
	log      *logrus.Logger
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = os.Getenv("PORTFOLIO_API_URL")
	}
	if base == "" {
		base = DefaultBaseURL
	}

	provider := cfg.Provider
	if provider == "" {
		provider = os.Getenv("PORTFOLIO_API_PROVIDER")
	}
	if provider == "" {
		provider = ProviderREST
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: requestTimeout}
	}
	creds := cfg.Credentials
	if creds == nil {
		creds = NewMemCredentialStore()
	}
	log := cfg.Log
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		base:     normalizeBaseURL(base),
		provider: provider,
		http:     hc,
		creds:    creds,
		log:      log,
	}
}

// normalizeBaseURL strips trailing slashes and ensures exactly one /api
// suffix.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimRight(raw, "/")
	if !strings.HasSuffix(raw, "/api") {
		raw += "/api"
	}
	return raw
}

func (c *Client) BaseURL() string              { return c.base }
func (c *Client) Credentials() CredentialStore { return c.creds }

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send runs one prepared request: bearer token attached when stored, failures
// logged and returned, response decoded into out when given.
func (c *Client) send(req *http.Request, out any) error {
	if token, err := c.creds.Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
		}).WithError(err).Error("request failed")
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Body: string(raw)}
		c.log.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
			"status": resp.StatusCode,
			"body":   string(raw),
		}).Error("request failed")
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
