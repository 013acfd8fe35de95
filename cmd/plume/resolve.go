package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	pathStyle = lipgloss.NewStyle().Faint(true)
)

func newResolveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <file>...",
		Short: "Show which tier a component definition resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			for _, name := range args {
				resolved := app.Selector.ComponentPath(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
					nameStyle.Render(name), pathStyle.Render(resolved))
			}
			return nil
		},
	}

	return cmd
}
