package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/vsproj/generator"
)

func newGenerateCommand(opts *options) *cobra.Command {
	var workspace string
	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Generate project artifacts for every target under root",
		Long: `Generate discovers target descriptions under root (default: current directory)
and writes project, filters and user files into each target's project directory, dependencies
first. Files whose content did not change are left untouched.`,
		Example: `  # Generate projects for targets under the current directory
  vsproj generate

  # Generate projects and a solution aggregating them
  vsproj generate ./yield --workspace proj/yield.sln`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootArg(args)
			if err != nil {
				return err
			}
			g, err := opts.generator(cmd, root)
			if err != nil {
				return err
			}
			if workspace != "" && !filepath.IsAbs(workspace) {
				workspace = filepath.Join(root, workspace)
			}
			targets, err := g.Discover(cmd.Context(), root)
			if err != nil {
				return err
			}
			batch, err := g.GenerateAll(cmd.Context(), targets, workspace)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), batch)
			return nil
		},
	}
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "solution file to write, relative to root")
	return cmd
}

// report prints one status line per generated target and the workspace
func report(out io.Writer, batch *generator.Batch) {
	for _, result := range batch.Results {
		status := "unchanged"
		if len(result.Written) > 0 {
			status = fmt.Sprintf("%d written", len(result.Written))
		}
		fmt.Fprintf(out, "%-24s %s (%s)\n", result.Name, result.ProjectURL, status)
	}
	if batch.WorkspaceURL != "" {
		status := "unchanged"
		if batch.WorkspaceWritten {
			status = "written"
		}
		fmt.Fprintf(out, "%-24s %s (%s)\n", "workspace", batch.WorkspaceURL, status)
	}
}
