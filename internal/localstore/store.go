// Package localstore is the client's durable local storage: one file per
// key under a directory, the desktop analogue of the browser's
// localStorage. Every operation reports its error; callers decide whether
// to log-and-fallback.
package localstore

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("localstore: key not found")

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) Load(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

// Save writes atomically via a temp file so a crash mid-write never leaves
// a half-written snapshot behind.
func (s *Store) Save(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
