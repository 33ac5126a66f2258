// Package storage is the localStorage analogue: a small string key/value
// store persisted to a single JSON file. Keys are fixed and never namespaced
// per user, so switching accounts without clearing storage mixes state. That
// mirrors the browser behavior this replaces and is a documented limitation.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// Fixed storage keys shared by the session, wishlist, and mock cart features.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyWishlist = "wishlist"
	KeyMockCart = "mock_cart"
)

// Store is a synchronous read-modify-write key/value store. The mutex only
// guards in-process memory safety; it is not a cross-process consistency
// boundary, same as localStorage in a single tab.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Open loads the store from path, starting empty if the file does not exist.
// An empty path keeps the store purely in memory.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.values); err != nil {
			return nil, fmt.Errorf("decode storage file: %w", err)
		}
	}
	return s, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and writes the file synchronously.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

// GetJSON decodes the value at key into out. A missing key leaves out
// untouched and returns false.
func (s *Store) GetJSON(key string, out interface{}) (bool, error) {
	raw, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, string(raw))
}

func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	return nil
}
