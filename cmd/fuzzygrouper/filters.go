package main

import (
	"github.com/spf13/cobra"

	"github.com/mossblaser/fuzzy-grouper/internal/config"
	"github.com/mossblaser/fuzzy-grouper/internal/normalize"
)

// filterFlags are shared by every command that normalizes input. The
// keep-* polarity matches the config file: filters are on unless kept.
type filterFlags struct {
	keepNumbers bool
	keepHex     bool
	keepBars    bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.keepNumbers, "keep-numbers", "n", false, "Do not collapse numbers before comparison")
	cmd.Flags().BoolVarP(&f.keepHex, "keep-hex", "x", false, "Do not collapse hex literals before comparison")
	cmd.Flags().BoolVarP(&f.keepBars, "keep-ascii-bars", "b", false, "Do not collapse ASCII-art bars before comparison")
}

// filterSet combines config defaults with the command's flags: a filter
// runs only when neither source keeps its tokens.
func (f *filterFlags) filterSet(cfg *config.Config) normalize.FilterSet {
	return normalize.FilterSet{
		Hex:     !f.keepHex && !cfg.Filters.KeepHex,
		Numbers: !f.keepNumbers && !cfg.Filters.KeepNumbers,
		Bars:    !f.keepBars && !cfg.Filters.KeepASCIIBars,
	}
}
