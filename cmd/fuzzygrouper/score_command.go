package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mossblaser/fuzzy-grouper/internal/corpus"
	"github.com/mossblaser/fuzzy-grouper/internal/similarity"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "score <file> <file>",
		Short: "Print the similarity score of two files",
		Args:  cobra.ExactArgs(2),
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

			ratio := similarity.Ratio(docs[0].Filtered, docs[1].Filtered)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(ratio, 'g', -1, 64))
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}
