// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the user's topic subscriptions and favorite papers
// as YAML files under a data directory. Each write replaces the whole file
// through a temporary file and a rename.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.yaml.in/yaml/v3"
)

const (
	topicsFile    = "topics.yaml"
	favoritesFile = "favorites.yaml"
)

var (
	// ErrDuplicate is returned when adding an entry that already exists.
	ErrDuplicate = errors.New("already exists")
	// ErrNotFound is returned when removing an entry that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmpty is returned for a blank topic or category name.
	ErrEmpty = errors.New("name is empty")
)

// Store reads and writes the data files in Dir.
type Store struct {
	Dir string

	mu sync.Mutex
}

// New returns a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}

// load decodes a YAML file into v. A missing file leaves v untouched.
func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// save encodes v and atomically replaces the file.
func (s *Store) save(name string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", name, err)
	}
	return nil
}
