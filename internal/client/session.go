package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFileMode = 0o600
	tokenDirMode  = 0o700
)

// FileTokenStore keeps the token in a single file readable only by its
// owner.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore returns a [TokenStore] backed by the file at path. The
// file and its parent directory are created on the first Save.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load implements [TokenStore].
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save implements [TokenStore].
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), tokenDirMode); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}

	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, tokenFileMode); err != nil {
		return fmt.Errorf("error restricting token file: %w", err)
	}

	return nil
}

// Clear implements [TokenStore].
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing token file: %w", err)
	}
	return nil
}
