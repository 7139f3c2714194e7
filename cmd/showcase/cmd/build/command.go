// Package build implements the `showcase build` command: run the data
// pipeline once, or continuously with --watch.
package build

import (
	"github.com/spf13/cobra"

	"github.com/dooosp/agent-showcase/internal/build"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

// AppContext is the slice of the application the build command needs.
type AppContext interface {
	BuildConfig() build.Config
}

// NewCommand creates the build command.
func NewCommand(appCtx AppContext) *cobra.Command {
	var (
		watch     bool
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the portfolio data artifacts",
		Long: `Build extracts the three sources, reconciles them with the reference
tables, and writes agents.json and agents.js to the output directory.

With --watch the pipeline re-runs whenever a source file changes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := appCtx.BuildConfig()
			if outputDir != "" {
				config.OutputDir = outputDir
			}

			pipeline := build.NewPipeline(config)
			ctx := logging.WithLogger(cmd.Context(), logging.Default())

			if _, err := pipeline.Run(ctx); err != nil {
				return err
			}
			if watch {
				return pipeline.Watch(ctx)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild on source file changes")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")

	return cmd
}
