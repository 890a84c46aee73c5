package commands

import (
	"github.com/google/vsaq/internal/cli"
	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
	"github.com/google/vsaq/internal/manifest"
	"github.com/google/vsaq/internal/server"
	"github.com/google/vsaq/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Serve  *ServeCommand
	List   *ListCommand
	Check  *CheckCommand
	Browse *BrowseCommand
}

// NewCommands creates all commands with dependencies. The flags struct is
// shared with Register and read at execution time, after cobra parsed it.
func NewCommands(cfg *config.Config, flags *cli.Flags) *Commands {
	scanner := discovery.NewScanner(cfg.TestFilePattern)
	filter := discovery.NewFilter()
	generator := manifest.NewGenerator(cfg, scanner)
	resolver := server.NewResolver(cfg, generator)
	handler := server.NewHandler(cfg, scanner, resolver)
	formatter := ui.NewFormatter(cfg)
	browser := ui.NewBrowser(cfg)

	return &Commands{
		Serve:  NewServeCommand(cfg, handler, formatter),
		List:   NewListCommand(cfg, flags, scanner, filter, formatter),
		Check:  NewCheckCommand(cfg, scanner, resolver, formatter),
		Browse: NewBrowseCommand(cfg, flags, scanner, filter, browser),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyTestRoot := func(cmd *cobra.Command, args []string) error {
		if flags.TestRoot != "" {
			cfg.TestRoot = flags.TestRoot
		}
		return nil
	}

	serveCmd := &cobra.Command{
		Use:   "serve [port]",
		Short: "Serve test assets over HTTP",
		Long:  "Start the test server on 127.0.0.1, serving static test assets from the configured source directories",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Serve.Execute,
	}
	rootCmd.AddCommand(serveCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered test files",
		Long:    "Scan the test-asset tree and list all test files without serving them",
		RunE:    c.List.Execute,
		PreRunE: applyTestRoot,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*questionnaire*')")
	listCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Directory tree to scan for test files")
	rootCmd.AddCommand(listCmd)

	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Check that every test file is reachable over the directory map",
		Long:    "Resolve each discovered test file's URL through the directory map and report files the server could not serve",
		RunE:    c.Check.Execute,
		PreRunE: applyTestRoot,
	}
	checkCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Directory tree to scan for test files")
	rootCmd.AddCommand(checkCmd)

	browseCmd := &cobra.Command{
		Use:     "browse",
		Short:   "Browse discovered test files interactively",
		Long:    "Display discovered test files and the URLs they are served under in an interactive viewer",
		RunE:    c.Browse.Execute,
		PreRunE: applyTestRoot,
	}
	browseCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*questionnaire*')")
	browseCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Directory tree to scan for test files")
	rootCmd.AddCommand(browseCmd)
}
