package projects

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// verbatimPrefix is prepended to long paths on Windows by symlink resolution.
const verbatimPrefix = `\\?\`

// Canonicalize returns the absolute, symlink-free form of path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	return strings.TrimPrefix(resolved, verbatimPrefix), nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
