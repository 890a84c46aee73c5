package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintBanner prints the server startup banner with the bound address and
// the active directory map.
func (f *Formatter) PrintBanner() {
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      VSAQ test server                         ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Serving at %s\n", color.GreenString("http://%s", f.config.Addr()))
	fmt.Printf("Test index at %s\n", color.GreenString("http://%s/tests.html", f.config.Addr()))
	fmt.Println()
	color.Cyan("Directory map (first match wins):")
	for _, m := range f.config.DirectoryMap {
		fmt.Printf("  %-50s -> %s\n", m.Prefix, m.Dir)
	}
	fmt.Println()
}

// PrintTestList prints the discovered test files as a tree rooted at the
// test-asset directory.
func (f *Formatter) PrintTestList(tests []string) {
	color.Green("Found %d test file(s):\n", len(tests))
	for i, test := range tests {
		if i == len(tests)-1 {
			color.Cyan("└── %s", test)
		} else {
			color.Cyan("├── %s", test)
		}
	}
}

// PrintCheckReport prints the outcome of a reachability check.
func (f *Formatter) PrintCheckReport(report *domain.CheckReport) {
	fmt.Println()
	if len(report.Missing) == 0 {
		color.Green("✓ All %d test file(s) are reachable", report.Total)
		return
	}
	color.Red("✗ %d of %d test file(s) are not reachable:", len(report.Missing), report.Total)
	for _, tf := range report.Missing {
		fmt.Printf("  %s (%s)\n", tf.URL, color.YellowString(tf.Path))
	}
}
