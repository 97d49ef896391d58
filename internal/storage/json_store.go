package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps each key in its own file under the config directory.
// This is the default backend.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Load() error {
	// Nothing to open ahead of time; values are read per key.
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read storage: %w", err)
	}
	return string(data), true, nil
}

// Set writes to a temp file in the same directory and renames it over
// the target, so a crash mid-write cannot corrupt the previous value.
func (s *JSONStore) Set(key, value string) error {
	target := s.keyPath(key)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) ConfigPath() string {
	return s.path
}

// keyPath maps a key to a file. The configured path itself holds the
// primary collection key; any other key lands beside it.
func (s *JSONStore) keyPath(key string) string {
	if key == filepath.Base(s.path) || key+".json" == filepath.Base(s.path) {
		return s.path
	}
	return filepath.Join(filepath.Dir(s.path), key+".json")
}
