package main

import (
	"fmt"
	"os"

	"github.com/google/vsaq/internal/cli"
	"github.com/google/vsaq/internal/cli/commands"
	"github.com/google/vsaq/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Load config (defaults plus .env / environment overrides)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, &flags)

	// Running the binary with just an optional port starts the server;
	// subcommands add the extra tooling.
	rootCmd := &cobra.Command{
		Use:     "vsaq-testserver [port]",
		Short:   "VSAQ test server",
		Long:    `A local development HTTP server that serves VSAQ static test assets (HTML, JavaScript, templates) from multiple source directories, with a generated test manifest and a test index page.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    cmds.Serve.Execute,
	}

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
