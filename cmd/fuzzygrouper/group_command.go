package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mossblaser/fuzzy-grouper/internal/corpus"
	"github.com/mossblaser/fuzzy-grouper/internal/grouper"
	"github.com/mossblaser/fuzzy-grouper/internal/logging"
	"github.com/mossblaser/fuzzy-grouper/internal/normcache"
)

func newGroupCommand(ctx *commandContext) *cobra.Command {
	var (
		thresholdFlag float64
		summaryOnly   bool
		compareWhole  bool
		printMatrix   bool
		verbose       bool
		filters       filterFlags
	)

	cmd := &cobra.Command{
		Use:   "group [files...]",
		Short: "Group the provided files by content similarity",
		Long: "Compare the provided files after normalization and print their\n" +
			"names on standard out, with blank lines separating groups of\n" +
			"similar files. Larger groups are printed first.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			threshold := cfg.Grouping.Threshold
			if cmd.Flags().Changed("threshold") {
				threshold = thresholdFlag
			}
			sample := cfg.Grouping.SampleSize
			if compareWhole {
				sample = grouper.SampleAll
			}

			cachePath := ""
			if cfg.Cache.Enabled {
				cachePath = cfg.Cache.Path
			}
			cache, err := normcache.Open(cachePath, logger)
			if err != nil {
				return fmt.Errorf("open normalization cache: %w", err)
			}
			defer cache.Close()

			docs, err := corpus.Load(cmd.Context(), args, filters.filterSet(cfg), cache, logger)
			if err != nil {
				return err
			}

			observer := newProgressObserver(cmd.ErrOrStderr(), len(docs), verbose)
			input := make([]grouper.Document, len(docs))
			for i, doc := range docs {
				input[i] = grouper.Document{Name: doc.Name, Content: doc.Filtered}
			}

			groups, err := grouper.Group(input, grouper.Options{
				Threshold:  threshold,
				SampleSize: sample,
				Observer:   observer.update,
			})
			observer.finish()
			if err != nil {
				return err
			}

			logger.Debug("grouping complete",
				logging.Int("files", len(docs)),
				logging.Int("groups", len(groups)),
				logging.Float64("threshold", threshold))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderGroups(groups, summaryOnly))

			if printMatrix {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderMatrix(groups, docs))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&thresholdFlag, "threshold", "t", grouper.DefaultThreshold,
		"Lower threshold for similarity scores of files to be grouped together")
	cmd.Flags().BoolVarP(&summaryOnly, "summary-only", "s", false,
		"Only show a single file from each group")
	cmd.Flags().BoolVarP(&compareWhole, "compare-whole-group", "w", false,
		"Check files against every member of a candidate group instead of only its first (slower)")
	cmd.Flags().BoolVarP(&printMatrix, "print-similarity-matrix", "m", false,
		"Print the similarity matrix of the groups")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Show progress while comparing")
	filters.register(cmd)

	return cmd
}

// renderGroups formats groups as blank-line-separated blocks of filenames.
// In summary mode each group shows its first member and a member count.
func renderGroups(groups [][]string, summaryOnly bool) string {
	blocks := make([]string, 0, len(groups))
	for _, group := range groups {
		if summaryOnly {
			blocks = append(blocks, fmt.Sprintf("%s\n(and %d %s)",
				group[0], len(group)-1, plural(len(group)-1, "other", "others")))
			continue
		}
		blocks = append(blocks, strings.Join(group, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
