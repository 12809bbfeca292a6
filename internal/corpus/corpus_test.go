package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mossblaser/fuzzy-grouper/internal/normalize"
	"github.com/mossblaser/fuzzy-grouper/internal/normcache"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadPreservesOrderAndRawContent(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.log", "2021-01-01 ERROR code 42\n")
	b := writeFile(t, dir, "b.log", "plain text\n")

	docs, err := Load(context.Background(), []string{a, b}, normalize.AllFilters(), nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(docs) != 2 || docs[0].Name != a || docs[1].Name != b {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	if docs[0].Content != "2021-01-01 ERROR code 42\n" {
		t.Fatalf("raw content mutated: %q", docs[0].Content)
	}
	if docs[0].Filtered != "@-@-@ ERROR code @\n" {
		t.Fatalf("filtered = %q", docs[0].Filtered)
	}
	if docs[1].Filtered != docs[1].Content {
		t.Fatalf("filter-free content changed: %q", docs[1].Filtered)
	}
}

func TestLoadWithoutFiltersKeepsContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.log", "value 123 at 0xff\n")

	docs, err := Load(context.Background(), []string{path}, normalize.FilterSet{}, nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if docs[0].Filtered != docs[0].Content {
		t.Fatalf("no filters selected but content changed: %q", docs[0].Filtered)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), []string{"/nonexistent/file.log"}, normalize.AllFilters(), nil, nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.log", "ERROR code 42\n")
	ctx := context.Background()

	cache, err := normcache.Open(filepath.Join(dir, "cache.db"), nil)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	// Seed the cache with a sentinel value; Load must serve it instead of
	// re-filtering.
	filters := normalize.FilterSet{Numbers: true}
	if err := cache.Store(ctx, "ERROR code 42\n", filters.Mask(), "SENTINEL"); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	docs, err := Load(ctx, []string{path}, filters, cache, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if docs[0].Filtered != "SENTINEL" {
		t.Fatalf("cache not consulted: filtered = %q", docs[0].Filtered)
	}
}

func TestLoadPopulatesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.log", "ERROR code 42\n")
	ctx := context.Background()

	cache, err := normcache.Open(filepath.Join(dir, "cache.db"), nil)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	filters := normalize.FilterSet{Numbers: true}
	if _, err := Load(ctx, []string{path}, filters, cache, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, ok, err := cache.Lookup(ctx, "ERROR code 42\n", filters.Mask())
	if err != nil || !ok {
		t.Fatalf("cache not populated: ok=%v err=%v", ok, err)
	}
	if got != "ERROR code @\n" {
		t.Fatalf("cached value = %q", got)
	}
}
