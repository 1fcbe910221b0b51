package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/vsproj/config"
	"github.com/viant/vsproj/generator"
)

func newWatchCommand(opts *options) *cobra.Command {
	var workspace string
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Generate project artifacts and regenerate them on changes",
		Long: `Watch generates like the generate command, then regenerates whenever a target
description changes or a file is added, removed or renamed under root. Editing ` + config.FileName + `
under root reloads configuration, flags keep overriding it. Stop with Ctrl+C.`,
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
			out := cmd.OutOrStdout()
			return g.Watch(cmd.Context(), root, workspace, func(batch *generator.Batch, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
				report(out, batch)
			})
		},
	}
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "solution file to write, relative to root")
	return cmd
}
