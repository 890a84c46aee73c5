package commands

import (
	"github.com/spf13/cobra"

	"github.com/google/vsaq/internal/cli"
	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
	"github.com/google/vsaq/internal/domain"
	"github.com/google/vsaq/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config  *config.Config
	flags   *cli.Flags
	scanner *discovery.Scanner
	filter  *discovery.Filter
	browser *ui.Browser
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(
	cfg *config.Config,
	flags *cli.Flags,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	browser *ui.Browser,
) *BrowseCommand {
	return &BrowseCommand{
		config:  cfg,
		flags:   flags,
		scanner: scanner,
		filter:  filter,
		browser: browser,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := bc.scanner.Scan(bc.config.TestRoot)
	if err != nil {
		return err
	}

	tests = bc.filter.FilterByName(tests, bc.flags.NameFilter)

	files := make([]domain.TestFile, 0, len(tests))
	for _, test := range tests {
		files = append(files, domain.TestFile{Path: test, URL: "/" + test})
	}
	return bc.browser.Browse(files)
}
