package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "plume",
		Short:         "Plume inspects style resolution for the Plume component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a plume config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newComponentsCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
