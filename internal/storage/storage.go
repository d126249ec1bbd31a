// Package storage provides atomic read-all / write-all access to the
// newline-delimited text files flow keeps its records in.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines returns the non-blank lines of the file at path. Lines are
// kept verbatim apart from a trailing carriage return, so every entry
// WriteLines stores is read back unchanged.
// A missing file is treated as empty.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines atomically replaces the file at path with one line per entry.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path. Blank entries are dropped.
func WriteLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(b.String()), 0o644); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
