package grouper

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mossblaser/fuzzy-grouper/internal/similarity"
)

const (
	// DefaultThreshold is the similarity two documents must reach to share
	// a group when the caller does not choose one.
	DefaultThreshold = 0.90

	// DefaultSampleSize compares newcomers against a group's first member
	// only.
	DefaultSampleSize = 1

	// SampleAll compares newcomers against every current member of a
	// candidate group.
	SampleAll = -1
)

var (
	// ErrInvalidThreshold reports a threshold outside [0, 1]. Out-of-range
	// values are rejected rather than clamped; silent clamping would hide
	// caller mistakes in a tool where the threshold is the whole point.
	ErrInvalidThreshold = errors.New("similarity threshold must be between 0 and 1")

	// ErrDuplicateDocument reports an input name appearing more than once,
	// which would break the partition guarantee of the result.
	ErrDuplicateDocument = errors.New("duplicate document name")

	// ErrUnknownDocument reports a group member with no content in the
	// input, which indicates an integration bug in the caller.
	ErrUnknownDocument = errors.New("unknown document name")
)

// Document pairs a unique name with the content compared during grouping.
// Callers normalize content before grouping; this package compares it
// verbatim.
type Document struct {
	Name    string
	Content string
}

// Progress describes the state of a grouping run after one placement.
type Progress struct {
	Index  int // index of the document just placed
	Total  int // number of documents in the run
	Groups int // groups existing so far
}

// Options controls a grouping run.
type Options struct {
	// Threshold is the minimum similarity for two documents to share a
	// group, in [0, 1]. Zero is a legal threshold; use DefaultThreshold
	// explicitly for the default behavior.
	Threshold float64

	// SampleSize is how many of a group's members, in insertion order, a
	// newcomer is compared against. 0 means DefaultSampleSize; SampleAll
	// (or any negative value) means the whole group.
	SampleSize int

	// Observer, when non-nil, is called after every placement. It exists
	// for progress reporting and never affects the result.
	Observer func(Progress)
}

// Group partitions docs into groups of similar documents. The returned
// groups are ordered by descending size (stable among equals); members
// within a group appear in placement order, first member being the group's
// exemplar. Every input name appears in exactly one group. For a fixed
// input order and options the result is exactly reproducible.
func Group(docs []Document, opts Options) ([][]string, error) {
	if math.IsNaN(opts.Threshold) || opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, opts.Threshold)
	}
	sample := opts.SampleSize
	if sample == 0 {
		sample = DefaultSampleSize
	}

	contents := make(map[string]string, len(docs))
	for _, doc := range docs {
		if _, seen := contents[doc.Name]; seen {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDocument, doc.Name)
		}
		contents[doc.Name] = doc.Content
	}

	groups := make([][]string, 0)
	for i, doc := range docs {
		placed := false
		for gi := range groups {
			ok, err := groupAccepts(groups[gi], doc.Content, contents, opts.Threshold, sample)
			if err != nil {
				return nil, err
			}
			if ok {
				groups[gi] = append(groups[gi], doc.Name)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []string{doc.Name})
		}

		// Largest group first: it is the most likely to absorb the next
		// document. Stable, so equal sizes keep their relative order.
		sort.SliceStable(groups, func(a, b int) bool {
			return len(groups[a]) > len(groups[b])
		})

		if opts.Observer != nil {
			opts.Observer(Progress{Index: i, Total: len(docs), Groups: len(groups)})
		}
	}
	return groups, nil
}

// groupAccepts checks content against the first sample members of group
// (all of them when sample is negative). The cheap upper bound runs before
// the exact ratio so clearly dissimilar pairs skip the expensive
// computation.
func groupAccepts(group []string, content string, contents map[string]string, threshold float64, sample int) (bool, error) {
	candidates := group
	if sample > 0 && sample < len(group) {
		candidates = group[:sample]
	}
	for _, name := range candidates {
		other, ok := contents[name]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownDocument, name)
		}
		m := similarity.NewMatcher(content, other)
		if m.UpperBound() < threshold || m.Ratio() < threshold {
			return false, nil
		}
	}
	return true, nil
}
