package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "fuzzygrouper",
		Short:         "Group similar text files by approximate content matching",
		Long: "fuzzygrouper clusters log files (or any text files) into groups of\n" +
			"similar content. Volatile substrings such as numbers, hex literals,\n" +
			"and ASCII separator bars are collapsed before comparison so files\n" +
			"that differ only in timestamps or counters still group together.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newGroupCommand(ctx))
	rootCmd.AddCommand(newScoreCommand(ctx))
	rootCmd.AddCommand(newNormalizeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
