package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by name pattern using wildcard matching.
// Supports patterns like "*questionnaire*" or "editor_test_dom.html"; a
// pattern without wildcards is treated as a substring match.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string
	for _, test := range tests {
		name := filepath.Base(test)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			// Fall back to matching the non-wildcard fragments in order,
			// so "*editor*" matches anywhere in the name.
			if matchFragments(name, strings.Split(pattern, "*")) {
				filtered = append(filtered, test)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}

func matchFragments(name string, fragments []string) bool {
	matchedAny := false
	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		i := strings.Index(name, frag)
		if i < 0 {
			return false
		}
		name = name[i+len(frag):]
		matchedAny = true
	}
	return matchedAny
}
