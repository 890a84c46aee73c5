package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/joho/godotenv"
)

// Mapping is a single prefix-to-directory rule. Dir keeps its trailing slash
// so concatenation with the prefix remainder yields the candidate path.
type Mapping struct {
	Prefix string
	Dir    string
}

// Config holds all configuration for the test server. It is populated once at
// startup and treated as immutable while the server runs.
type Config struct {
	// Network settings
	Host string
	Port int

	// Build artifacts
	DepsFile     string
	AllTestsFile string
	FallbackFile string

	// Test discovery settings
	TestRoot         string
	TestFilePattern  string
	ManifestVariable string

	// URL prefix to directory rules, checked in order
	DirectoryMap []Mapping
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Host:             DefaultHost,
		Port:             DefaultPort,
		DepsFile:         DefaultDepsFile,
		AllTestsFile:     DefaultAllTestsFile,
		FallbackFile:     DefaultFallbackFile,
		TestRoot:         DefaultTestRoot,
		TestFilePattern:  DefaultTestFilePattern,
		ManifestVariable: DefaultManifestVariable,
	}
	cfg.DirectoryMap = make([]Mapping, len(DefaultDirectoryMap))
	copy(cfg.DirectoryMap, DefaultDirectoryMap)
	return cfg
}

// Load creates a config and applies overrides from the environment. A .env
// file in the working directory is read first if present; variables already
// set in the environment win.
func Load() (*Config, error) {
	cfg := New()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if v := os.Getenv("VSAQ_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("VSAQ_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VSAQ_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("VSAQ_EXTRA_MAP"); v != "" {
		extra, err := ParseMappings(v)
		if err != nil {
			return nil, fmt.Errorf("invalid VSAQ_EXTRA_MAP: %w", err)
		}
		cfg.DirectoryMap = append(cfg.DirectoryMap, extra...)
	}

	return cfg, nil
}

// ParseMappings parses whitespace-separated prefix=dir tokens into mapping
// entries. Tokens follow shell quoting rules so directories containing spaces
// can be quoted. Entries keep their given order and append after the built-in
// table, so built-in rules always win first.
func ParseMappings(s string) ([]Mapping, error) {
	tokens, err := shellwords.Split(s)
	if err != nil {
		return nil, err
	}
	var mappings []Mapping
	for _, tok := range tokens {
		prefix, dir, ok := strings.Cut(tok, "=")
		if !ok || prefix == "" || dir == "" {
			return nil, fmt.Errorf("mapping %q is not of the form prefix=dir", tok)
		}
		mappings = append(mappings, Mapping{Prefix: prefix, Dir: dir})
	}
	return mappings, nil
}

// Addr returns the host:port the server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DepsBasename returns the filename suffix that triggers the deps override
func (c *Config) DepsBasename() string {
	if i := strings.LastIndex(c.DepsFile, "/"); i >= 0 {
		return c.DepsFile[i+1:]
	}
	return c.DepsFile
}
