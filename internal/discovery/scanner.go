package discovery

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scanner scans a directory tree for test files
type Scanner struct {
	pattern string
}

// NewScanner creates a Scanner matching file basenames against the given glob
func NewScanner(pattern string) *Scanner {
	return &Scanner{pattern: pattern}
}

// Scan finds all test files under the given root directory. Paths are
// returned relative to the working directory (root included) in directory
// walk order, matching how the served URLs are formed.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test root is not a directory: %s", root)
	}

	var testFiles []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := filepath.Match(s.pattern, d.Name())
		if err != nil {
			return fmt.Errorf("bad test file pattern %q: %w", s.pattern, err)
		}
		if matched {
			testFiles = append(testFiles, path)
		}
		return nil
	})

	return testFiles, err
}
