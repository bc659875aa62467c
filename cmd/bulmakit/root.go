package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bulmakit",
		Short:         "bulmakit validates and renders declarative Bulma components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a bulmakit configuration file")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSchemaCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
