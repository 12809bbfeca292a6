package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mossblaser/fuzzy-grouper/internal/logging"
	"github.com/mossblaser/fuzzy-grouper/internal/normalize"
	"github.com/mossblaser/fuzzy-grouper/internal/normcache"
)

// Document is one loaded file. Content is the raw text as read from disk;
// Filtered is the form used for similarity comparison. Both are immutable
// for the duration of a run.
type Document struct {
	Name     string
	Content  string
	Filtered string
}

// Load reads every path in order and derives filtered content using the
// given filter set. The cache may be nil or disabled; cache read errors
// are logged and treated as misses, since the cache is an optimization,
// not a source of truth.
func Load(ctx context.Context, paths []string, filters normalize.FilterSet, cache *normcache.Cache, logger *slog.Logger) ([]Document, error) {
	logger = logging.NewComponentLogger(logger, "corpus")

	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		content := string(raw)
		filtered := filterContent(ctx, content, filters, cache, logger)
		docs = append(docs, Document{Name: path, Content: content, Filtered: filtered})
	}
	return docs, nil
}

func filterContent(ctx context.Context, content string, filters normalize.FilterSet, cache *normcache.Cache, logger *slog.Logger) string {
	if !filters.Any() {
		return content
	}
	mask := filters.Mask()
	if cached, ok, err := cache.Lookup(ctx, content, mask); err != nil {
		logger.Warn("cache lookup failed, filtering from scratch", logging.Error(err))
	} else if ok {
		return cached
	}

	filtered := filters.Apply(content)

	if err := cache.Store(ctx, content, mask, filtered); err != nil {
		logger.Warn("cache store failed", logging.Error(err))
	}
	return filtered
}
