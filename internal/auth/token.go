// Package auth obtains bearer tokens from the external authentication
// provider and caches them for reuse across upstream API calls.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrNoSession is returned when no usable token can be produced; callers
// abort the upstream request before it is sent.
var ErrNoSession = errors.New("no active session: bearer token unavailable")

// TokenSource yields a bearer token for upstream requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Static returns a TokenSource that always yields the given token. Used in
// dev mode and tests.
func Static(token string) TokenSource {
	return staticSource(token)
}

type staticSource string

func (s staticSource) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoSession
	}
	return string(s), nil
}

// Config holds the auth-provider credentials, read from the environment.
type Config struct {
	TokenURL     string `env:"AUTH_TOKEN_URL"`
	ClientID     string `env:"AUTH_CLIENT_ID"`
	ClientSecret string `env:"AUTH_CLIENT_SECRET"`
	Audience     string `env:"AUTH_AUDIENCE"`
}

// ClientCredentials exchanges client credentials for bearer tokens and
// caches the result until shortly before expiry.
type ClientCredentials struct {
	cfg        Config
	httpClient *http.Client

	mu      sync.RWMutex
	token   string
	expires time.Time
}

// NewClientCredentials builds a token source for the configured provider.
func NewClientCredentials(cfg Config) *ClientCredentials {
	return &ClientCredentials{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Token returns a cached token, refreshing it 60 seconds before expiry.
// Double-checked locking keeps concurrent refreshes down to one exchange.
func (c *ClientCredentials) Token(ctx context.Context) (string, error) {
	if c.cfg.TokenURL == "" || c.cfg.ClientID == "" {
		return "", ErrNoSession
	}

	c.mu.RLock()
	if c.token != "" && time.Now().Before(c.expires) {
		token := c.token
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expires) {
		return c.token, nil
	}

	token, expiresIn, err := c.exchange(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expires = time.Now().Add(time.Duration(expiresIn-60) * time.Second)
	return token, nil
}

func (c *ClientCredentials) exchange(ctx context.Context) (string, int64, error) {
	body, err := json.Marshal(map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"audience":      c.cfg.Audience,
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", 0, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, payload)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", 0, ErrNoSession
	}
	if result.ExpiresIn <= 60 {
		result.ExpiresIn = 120
	}
	return result.AccessToken, result.ExpiresIn, nil
}
