package server

import (
	"os"
	"strings"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/manifest"
)

// Resolver translates request paths to filesystem paths using the configured
// directory map.
type Resolver struct {
	cfg      *config.Config
	manifest *manifest.Generator
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config, gen *manifest.Generator) *Resolver {
	return &Resolver{cfg: cfg, manifest: gen}
}

// Resolve maps a request path to the file that should be served. Any query
// string is stripped first. Resolution order:
//
//  1. paths ending in the deps manifest basename always map to the deps file
//  2. the manifest route triggers lazy generation and maps to the artifact
//  3. the first directory-map entry whose prefix matches and whose candidate
//     file exists wins
//  4. everything else falls back to the default document
//
// The fallback is returned without checking existence; the caller turns a
// missing file into a 404.
func (r *Resolver) Resolve(path string) (string, error) {
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}

	if strings.HasSuffix(path, r.cfg.DepsBasename()) {
		return r.cfg.DepsFile, nil
	}
	if path == "/"+r.cfg.AllTestsFile {
		if err := r.manifest.Ensure(); err != nil {
			return "", err
		}
		return r.cfg.AllTestsFile, nil
	}
	for _, m := range r.cfg.DirectoryMap {
		if !strings.HasPrefix(path, m.Prefix) {
			continue
		}
		candidate := m.Dir + path[len(m.Prefix):]
		if isRegularFile(candidate) {
			return candidate, nil
		}
	}
	return r.cfg.FallbackFile, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
