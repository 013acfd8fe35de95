package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plumekit/plume/pkg/palette"
)

func newStylesCmd(flags *rootFlags) *cobra.Command {
	var swatches bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List installed style packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			packs := app.Finder.List()
			if len(packs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No style packs installed.")
				return nil
			}

			for _, pack := range packs {
				marker := " "
				if pack.Manifest.Name == app.Config.Style {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s  %s\n",
					marker,
					nameStyle.Render(pack.Manifest.Name),
					pack.Manifest.Version,
					pathStyle.Render(pack.Dir))

				if swatches && len(pack.Manifest.Palette) > 0 {
					if err := renderSwatches(cmd, pack.Manifest.Palette); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&swatches, "swatches", false, "Render palette swatches for each pack")

	return cmd
}

func renderSwatches(cmd *cobra.Command, colors map[string]string) error {
	p, err := palette.FromColors(colors)
	if err != nil {
		return err
	}

	for _, slot := range p.Slots() {
		row := "    " + slot + " "
		for shade := palette.Shade50; shade <= palette.Shade900; shade++ {
			block := lipgloss.NewStyle().Background(p[slot].Color(shade)).Render("  ")
			row += block
		}
		fmt.Fprintln(cmd.OutOrStdout(), row)
	}
	return nil
}
