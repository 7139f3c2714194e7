// Package validate implements the `showcase validate` command: run the
// extract and reconcile stages and report what a build would produce,
// without writing any artifact.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dooosp/agent-showcase/internal/build"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

// AppContext is the slice of the application the validate command needs.
type AppContext interface {
	BuildConfig() build.Config
}

// NewCommand creates the validate command.
func NewCommand(appCtx AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check sources and reference tables without writing output",
		Long: `Validate runs the full extract and reconcile pass and reports the
resulting counts. Duplicate agent ids, dangling connection references,
and skipped subagent files are logged as they are found. Nothing is
written; the command fails only when a reference table is missing or
malformed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipeline := build.NewPipeline(appCtx.BuildConfig())
			ctx := logging.WithLogger(cmd.Context(), logging.Default())

			data, err := pipeline.Build(ctx)
			if err != nil {
				return err
			}

			fmt.Println(build.Summary(data))
			fmt.Println("Sources OK; no files written")
			return nil
		},
	}
}
