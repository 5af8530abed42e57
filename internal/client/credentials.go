package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CredentialStore persists the admin bearer token between runs.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileCredentialStore keeps the token in a file under the user config dir.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore() (*FileCredentialStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileCredentialStore{path: filepath.Join(dir, "folio", "token")}, nil
}

func (s *FileCredentialStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileCredentialStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileCredentialStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemCredentialStore holds the token in memory, for tests and one-shot use.
type MemCredentialStore struct {
	mu    sync.Mutex
	token string
}

func NewMemCredentialStore() *MemCredentialStore { return &MemCredentialStore{} }

func (s *MemCredentialStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemCredentialStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
