package todo

import (
	"fmt"
	"strings"

	"github.com/dsallow/flow/internal/storage"
)

// Store is the todo list backed by a single text file.
type Store struct {
	path string
}

// NewStore returns a store reading and writing the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// List parses every record. A single malformed record fails the whole
// listing; no partial result is returned.
func (s *Store) List() ([]Todo, error) {
	lines, err := storage.ReadLines(s.path)
	if err != nil {
		return nil, fmt.Errorf("read todos: %w", err)
	}

	todos := make([]Todo, 0, len(lines))
	for i, line := range lines {
		t, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("parse todo record %d: %w", i+1, err)
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// Append adds a todo at the end of the list.
func (s *Store) Append(description string, status Status) error {
	description = strings.TrimSpace(description)
	if err := ValidateDescription(description); err != nil {
		return err
	}

	lines, err := storage.ReadLines(s.path)
	if err != nil {
		return fmt.Errorf("read todos: %w", err)
	}
	lines = append(lines, Todo{Description: description, Status: status}.String())

	if err := storage.WriteLines(s.path, lines); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}

// Rewrite replaces the whole list.
func (s *Store) Rewrite(todos []Todo) error {
	lines := make([]string, len(todos))
	for i, t := range todos {
		lines[i] = t.String()
	}

	if err := storage.WriteLines(s.path, lines); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}
