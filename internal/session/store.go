package session

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/security"
	"mountainride-backoffice/internal/storage"
)

// Durable keys of the operator session
const (
	TokenKey   = "auth_token"
	UserKey    = "auth_user"
	BrowserKey = "auth_browser"
)

// binding ties the session to the browser that signed in. Key travels in
// the session cookie, CSRF in every form the dashboard renders.
type binding struct {
	Key  string `json:"key"`
	CSRF string `json:"csrf"`
}

func newBinding() binding {
	return binding{Key: uuid.NewString(), CSRF: uuid.NewString()}
}

func (b binding) valid() bool {
	return b.Key != "" && b.CSRF != ""
}

// Store holds the authenticated operator's token and profile. There is one
// Store per process, created at startup and handed to every component that
// needs it. It is mutated only by Establish and Clear.
type Store struct {
	storage storage.Storage

	mu      sync.RWMutex
	ready   bool
	token   string
	profile *domain.Profile
	browser binding
}

func NewStore(s storage.Storage) *Store {
	return &Store{storage: s}
}

// Restore reads a previously saved token and profile. The profile is
// restored only when both entries are present; the token is not checked
// against the server. Restore marks the store ready even when it fails so
// the shell can fall through to the login page.
func (s *Store) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
	}()

	token, err := s.storage.Get(ctx, TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to restore session token: %w", err)
	}

	raw, err := s.storage.Get(ctx, UserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to restore session profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		logger.Warn("Discarding unreadable stored profile", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	browser, err := s.loadBinding(ctx)
	if err != nil {
		// the old cookie can no longer be matched; the operator signs in again
		logger.Warn("Stored session has no browser binding", "error", err)
		browser = newBinding()
	}

	s.mu.Lock()
	s.token = token
	s.profile = &profile
	s.browser = browser
	s.mu.Unlock()

	logger.Info("Session restored", "email", profile.Email)
	return nil
}

func (s *Store) loadBinding(ctx context.Context) (binding, error) {
	raw, err := s.storage.Get(ctx, BrowserKey)
	if err != nil {
		return binding{}, err
	}
	var b binding
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return binding{}, err
	}
	if !b.valid() {
		return binding{}, errors.New("incomplete browser binding")
	}
	return b, nil
}

// Establish persists a fresh login and makes it current. Each login gets a
// new browser binding, so a previously signed-in browser is signed out.
func (s *Store) Establish(ctx context.Context, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	browser := newBinding()
	rawBrowser, err := json.Marshal(browser)
	if err != nil {
		return fmt.Errorf("failed to encode browser binding: %w", err)
	}
	if err := s.storage.Set(ctx, TokenKey, profile.Token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, UserKey, string(raw)); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, BrowserKey, string(rawBrowser)); err != nil {
		return err
	}

	s.mu.Lock()
	s.ready = true
	s.token = profile.Token
	s.profile = &profile
	s.browser = browser
	s.mu.Unlock()
	return nil
}

// Clear drops the session from memory and from durable storage. Memory is
// cleared even when storage fails, so the operator is logged out either way.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.browser = binding{}
	s.mu.Unlock()

	return errors.Join(
		s.storage.Delete(ctx, TokenKey),
		s.storage.Delete(ctx, UserKey),
		s.storage.Delete(ctx, BrowserKey),
	)
}

// Token implements rest.TokenSource
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns a copy of the current profile, or nil
func (s *Store) Profile() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil
}

// SessionKey is the value of the signed-in browser's session cookie
func (s *Store) SessionKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.browser.Key
}

// CSRFToken is the form token expected on every state-changing request
func (s *Store) CSRFToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.browser.CSRF
}

// Owns reports whether key is the session cookie of the signed-in browser
func (s *Store) Owns(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil || key == "" || s.browser.Key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(s.browser.Key)) == 1
}

// ValidCSRF reports whether token matches the session's form token
func (s *Store) ValidCSRF(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil || token == "" || s.browser.CSRF == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.browser.CSRF)) == 1
}

// Ready reports whether the startup restore has completed
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// ExpiresAt returns the token expiry when the token is a readable JWT.
// It is informational only and never ends the session.
func (s *Store) ExpiresAt() *time.Time {
	token := s.Token()
	if token == "" {
		return nil
	}
	claims, err := security.ReadClaims(token)
	if err != nil {
		return nil
	}
	return claims.ExpiresAt
}
