// Package session persists the admin's auth state: a bearer token and a
// minimal user profile, kept in a JSON file and cleared on logout or an
// unauthorized response from the backend.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Profile is the minimal stored user profile
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Session is the persisted auth state
type Session struct {
	Token   string   `json:"token"`
	Profile *Profile `json:"profile,omitempty"`
}

// Store holds the current session in memory and mirrors it to disk
type Store struct {
	path string

	mu      sync.Mutex
	current Session
}

// NewStore creates a store backed by the given file path. The file is not
// read until Load is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session from disk. A missing file is not an
// error; it leaves the store empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.current = Session{}
			return nil
		}
		return err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupt session file: treat as logged out
		s.current = Session{}
		return nil
	}
	s.current = sess
	return nil
}

// Token returns the stored bearer token, empty when logged out
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// Current returns a copy of the stored session
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the session and persists it to disk
func (s *Store) Set(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = sess

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear wipes the session from memory and disk. Called on logout and on an
// unauthorized backend response.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
