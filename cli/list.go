package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List targets in generation order with their references",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootArg(args)
			if err != nil {
				return err
			}
			g, err := opts.generator(cmd, root)
			if err != nil {
				return err
			}
			targets, err := g.Discover(cmd.Context(), root)
			if err != nil {
				return err
			}
			planned, err := g.Plan(targets)
			if err != nil {
				return err
			}
			platform := g.Config().Platform
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Kind", "Project", "References"})
			for _, candidate := range planned {
				t.AppendRow(table.Row{candidate.Name(), candidate.Kind(), g.ProjectURL(candidate), strings.Join(candidate.References(platform), ", ")})
			}
			t.Render()
			return nil
		},
	}
	return cmd
}
