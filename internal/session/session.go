// Package session holds the bearer token and cached user identity as an
// explicit object injected into the API bindings, instead of ambient global
// lookups. Lifecycle: Init reads persisted state, Teardown clears it.
package session

import (
	"net/url"
	"sync"

	"auctionfront/internal/domain"
	"auctionfront/internal/storage"
)

type Session struct {
	mu    sync.Mutex
	store *storage.Store
	token string
	user  *domain.User
}

// Init builds a Session from whatever token and user the store already holds.
func Init(store *storage.Store) (*Session, error) {
	s := &Session{store: store}
	if token, ok := store.Get(storage.KeyToken); ok {
		s.token = token
	}
	var u domain.User
	ok, err := store.GetJSON(storage.KeyUser, &u)
	if err != nil {
		return nil, err
	}
	if ok {
		s.user = &u
	}
	return s, nil
}

// IsAuthenticated is a pure predicate on the presence of a stored token.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the cached identity, or nil when signed out.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetCredentials persists a freshly issued token and the identity it belongs to.
func (s *Session) SetCredentials(token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	if err := s.store.Set(storage.KeyToken, token); err != nil {
		return err
	}
	if user != nil {
		return s.store.SetJSON(storage.KeyUser, user)
	}
	return s.store.Remove(storage.KeyUser)
}

// Teardown clears the token and cached user. Local-only: no network call.
func (s *Session) Teardown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	if err := s.store.Remove(storage.KeyToken); err != nil {
		return err
	}
	return s.store.Remove(storage.KeyUser)
}

// HandleOAuthCallback lands the redirect-based social login flow: it extracts
// the accessToken query parameter and stores it as the bearer token. A missing
// token reports failure instead of half-initializing the session.
func (s *Session) HandleOAuthCallback(query url.Values) error {
	token := query.Get("accessToken")
	if token == "" {
		return domain.ErrAuthFailed
	}
	return s.SetCredentials(token, nil)
}
