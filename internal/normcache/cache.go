package normcache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/mossblaser/fuzzy-grouper/internal/logging"
)

// Cache stores filtered content in a SQLite database. A nil or disabled
// Cache is safe to use; Lookup always misses and Store does nothing.
type Cache struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the cache database at path. An empty
// path returns a disabled cache. A sidecar file lock serializes schema
// migration across concurrent processes; SQLite's own locking covers
// everything after that.
func Open(path string, logger *slog.Logger) (*Cache, error) {
	logger = logging.NewComponentLogger(logger, "normcache")
	if path == "" {
		return &Cache{logger: logger}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{db: db, path: path, logger: logger}
	if err := cache.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return cache, nil
}

// Enabled reports whether the cache is backed by a database.
func (c *Cache) Enabled() bool {
	return c != nil && c.db != nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the filtered form of content under the given filter mask
// if cached.
func (c *Cache) Lookup(ctx context.Context, content string, mask uint8) (string, bool, error) {
	if !c.Enabled() {
		return "", false, nil
	}
	var filtered string
	row := c.db.QueryRowContext(
		ctx,
		`SELECT filtered FROM filtered_content WHERE content_hash = ? AND filter_mask = ?`,
		contentHash(content),
		int(mask),
	)
	if err := row.Scan(&filtered); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query cache: %w", err)
	}
	return filtered, true, nil
}

// Store records the filtered form of content under the given filter mask,
// replacing any previous entry.
func (c *Cache) Store(ctx context.Context, content string, mask uint8, filtered string) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO filtered_content (content_hash, filter_mask, filtered, created_at)
         VALUES (?, ?, ?, ?)`,
		contentHash(content),
		int(mask),
		filtered,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	c.logger.Debug("cached filtered content",
		logging.Int("filter_mask", int(mask)),
		logging.Int("filtered_bytes", len(filtered)))
	return nil
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
