package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/google/vsaq/internal/cli"
	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
	"github.com/google/vsaq/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	flags     *cli.Flags
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	flags *cli.Flags,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		flags:     flags,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.scanner.Scan(lc.config.TestRoot)
	if err != nil {
		return err
	}

	tests = lc.filter.FilterByName(tests, lc.flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	lc.formatter.PrintTestList(tests)
	return nil
}
