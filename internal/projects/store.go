// Package projects manages the saved-projects list, a flat text file with
// one absolute directory path per line, most recently used first.
package projects

import (
	"fmt"
	"slices"

	"github.com/dsallow/flow/internal/storage"
)

// Store is the project list backed by a single text file.
type Store struct {
	path string
}

// NewStore returns a store reading and writing the file at path.
// The file is created on the first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// List returns all saved project paths, most recently used first.
func (s *Store) List() ([]string, error) {
	paths, err := storage.ReadLines(s.path)
	if err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}
	return paths, nil
}

// Contains reports whether path is saved.
func (s *Store) Contains(path string) (bool, error) {
	paths, err := s.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(paths, path), nil
}

// UpsertFront saves path as the first entry.
// If path is already saved it is moved to the front instead of duplicated.
func (s *Store) UpsertFront(path string) error {
	if path == "" {
		return fmt.Errorf("save project: empty path")
	}

	paths, err := s.List()
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(paths)+1)
	updated = append(updated, path)
	for _, p := range paths {
		if p != path {
			updated = append(updated, p)
		}
	}

	if err := storage.WriteLines(s.path, updated); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}

// Remove deletes path from the list. Removing a path that isn't saved
// leaves the file untouched.
func (s *Store) Remove(path string) error {
	paths, err := s.List()
	if err != nil {
		return err
	}

	filtered := slices.DeleteFunc(slices.Clone(paths), func(p string) bool {
		return p == path
	})
	if len(filtered) == len(paths) {
		return nil
	}

	if err := storage.WriteLines(s.path, filtered); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}
