package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mossblaser/fuzzy-grouper/internal/corpus"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Show the normalized version of a file",
		Long: "Print the file as the grouper sees it after the enabled filters\n" +
			"have collapsed numbers, hex literals, and ASCII bars.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			docs, err := corpus.Load(cmd.Context(), args, filters.filterSet(cfg), nil, logger)
			if err != nil {
				return err
			}

			// The filtered content keeps the file's own line endings; no
			// trailing newline is added.
			fmt.Fprint(cmd.OutOrStdout(), docs[0].Filtered)
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}
