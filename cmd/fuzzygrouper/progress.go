package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/mossblaser/fuzzy-grouper/internal/grouper"
)

// progressLogInterval throttles plain-text progress when stderr is not a
// terminal, so redirected output stays readable.
const progressLogInterval = 100

// progressObserver reports grouping progress on stderr. On a terminal it
// drives an interactive progress bar; elsewhere it prints occasional plain
// lines. A nil observer is silent.
type progressObserver struct {
	bar   *progressbar.ProgressBar
	w     io.Writer
	total int
}

func newProgressObserver(w io.Writer, total int, enabled bool) *progressObserver {
	if !enabled || total == 0 {
		return nil
	}
	observer := &progressObserver{w: w, total: total}
	if isTerminal(w) {
		observer.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("comparing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	return observer
}

func (p *progressObserver) update(u grouper.Progress) {
	if p == nil {
		return
	}
	if p.bar != nil {
		p.bar.Describe(fmt.Sprintf("comparing (%d groups)", u.Groups))
		_ = p.bar.Set(u.Index + 1)
		return
	}
	if (u.Index+1)%progressLogInterval == 0 || u.Index+1 == u.Total {
		fmt.Fprintf(p.w, "compared %d of %d files (%d groups)\n", u.Index+1, u.Total, u.Groups)
	}
}

func (p *progressObserver) finish() {
	if p == nil || p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
