package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plumekit/plume/pkg/registry"
)

func newComponentsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the built-in component table with resolved paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			reg := registry.NewRegistry()
			plugin := registry.NewPlugin(app.Selector, app.Log)
			if err := plugin.RegisterTypes(reg); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tPATH")
			for _, c := range reg.Components() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Version(), c.Path)
			}
			return w.Flush()
		},
	}

	return cmd
}
