package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	buildcmd "github.com/dooosp/agent-showcase/cmd/showcase/cmd/build"
	validatecmd "github.com/dooosp/agent-showcase/cmd/showcase/cmd/validate"
)

// Execute runs the showcase CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "showcase",
		Short:   "Agent portfolio data builder",
		Version: fmt.Sprintf("%s (commit %s, built %s)", a.version, a.commit, a.date),
		Long: `Showcase builds the static data behind the agent portfolio site.

It extracts the agent catalog, the subagent definitions, and the project
catalog from their personal source files, reconciles them against the
translation and connection reference tables, and emits one normalized
JSON document plus an embeddable JS module for the site.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is .showcase.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	// Not bound to the config field: StringVar would overwrite the
	// env-loaded LOG_LEVEL with the flag default at registration time.
	// setupCommand applies the flag value only when it is set.
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("showcase {{.Version}}\n")

	rootCmd.AddCommand(buildcmd.NewCommand(a))
	rootCmd.AddCommand(validatecmd.NewCommand(a))

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Flags are defined as persistent flags above, so lookup errors
	// would indicate a programming error
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// mustGetBool reads a defined boolean flag, panicking on lookup failure.
func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q not defined: %v", name, err))
	}
	return value
}

// mustGetString reads a defined string flag, panicking on lookup failure.
func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q not defined: %v", name, err))
	}
	return value
}
