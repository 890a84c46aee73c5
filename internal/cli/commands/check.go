package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
	"github.com/google/vsaq/internal/domain"
	"github.com/google/vsaq/internal/server"
	"github.com/google/vsaq/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	resolver  *server.Resolver
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	resolver *server.Resolver,
	formatter *ui.Formatter,
) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		scanner:   scanner,
		resolver:  resolver,
		formatter: formatter,
	}
}

// Execute resolves every discovered test file's URL through the directory map
// and reports the ones the server would not serve from their own file. A file
// is unreachable when its URL resolves to a different path (usually the
// fallback document) or to a file that no longer exists.
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := cc.scanner.Scan(cc.config.TestRoot)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		color.Yellow("No test files to check")
		return nil
	}

	report := &domain.CheckReport{Total: len(tests)}
	bar := ui.NewProgressBar(len(tests))
	for _, test := range tests {
		tf := domain.TestFile{Path: test, URL: "/" + test}
		resolved, err := cc.resolver.Resolve(tf.URL)
		if err != nil {
			return err
		}
		if resolved == test && fileExists(resolved) {
			report.Reachable++
		} else {
			report.Missing = append(report.Missing, tf)
		}
		bar.Update(report.Reachable, len(report.Missing))
	}
	bar.Finish()

	cc.formatter.PrintCheckReport(report)
	if len(report.Missing) > 0 {
		return fmt.Errorf("%d of %d test file(s) are not reachable", len(report.Missing), report.Total)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
