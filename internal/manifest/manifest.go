package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
)

// Generator builds the all_tests.js artifact listing discovered test files.
type Generator struct {
	cfg     *config.Config
	scanner *discovery.Scanner
}

// NewGenerator returns a Generator that writes the config's manifest path.
func NewGenerator(cfg *config.Config, scanner *discovery.Scanner) *Generator {
	return &Generator{cfg: cfg, scanner: scanner}
}

// Ensure generates the manifest artifact if it does not exist yet. Presence
// of the file on disk is a permanent cache marker: once written the artifact
// is never regenerated, even when the test tree changes. Delete the file to
// force a rebuild.
func (g *Generator) Ensure() error {
	if _, err := os.Stat(g.cfg.AllTestsFile); err == nil {
		return nil
	}
	tests, err := g.scanner.Scan(g.cfg.TestRoot)
	if err != nil {
		return fmt.Errorf("discover test files: %w", err)
	}
	return g.Write(tests)
}

// Write serializes the test file list as a single-line JavaScript array
// assignment and writes it to the manifest path.
func (g *Generator) Write(tests []string) error {
	if tests == nil {
		tests = []string{}
	}
	list, err := json.Marshal(tests)
	if err != nil {
		return fmt.Errorf("marshal test list: %w", err)
	}
	data := []byte(fmt.Sprintf("var %s=%s;", g.cfg.ManifestVariable, list))

	path := g.cfg.AllTestsFile
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
