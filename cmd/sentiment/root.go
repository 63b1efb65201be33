package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "sentiment",
		Short:        "Tweet sentiment dataset accessor",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "path to config file")

	rootCmd.AddCommand(
		serveCommand(a),
		rangeCommand(a),
		insertCommand(a),
		loadCommand(a),
		watchCommand(a),
	)

	return rootCmd
}
