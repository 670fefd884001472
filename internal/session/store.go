package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the access/refresh token pair under fixed keys in a local
// file, the CLI counterpart of the browser's local storage. Tokens are
// cleared wholesale, never individually.
type Store struct {
	path string
}

// NewStore creates a token store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

type tokenFile struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Save writes the token pair, creating parent directories as needed.
func (s *Store) Save(accessToken, refreshToken string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(tokenFile{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Load reads the stored token pair. ErrNoSession is returned when nothing
// is stored.
func (s *Store) Load() (accessToken, refreshToken string, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", ErrNoSession
		}
		return "", "", fmt.Errorf("failed to read token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", "", fmt.Errorf("failed to parse token file: %w", err)
	}
	if tf.AccessToken == "" {
		return "", "", ErrNoSession
	}
	return tf.AccessToken, tf.RefreshToken, nil
}

// Clear removes the stored tokens. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
