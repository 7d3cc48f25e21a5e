// Package gallerycache implements the GalleryCache port as per-key JSON files
// under a cache directory. Invalidation is a schema version stamp plus a TTL;
// anything unreadable is a miss, never an error.
package gallerycache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"solview/internal/core/domain"
	"solview/internal/core/ports"
)

// schemaVersion stamps every entry. Bumping it after a classifier or grouping
// change orphans all previous entries at once.
const schemaVersion = 3

// FileCache stores grouped galleries as JSON files.
type FileCache struct {
	dir string
	ttl time.Duration
	log *zap.Logger
}

// Ensure it implements the port
var _ ports.GalleryCache = (*FileCache)(nil)

// New creates a file cache rooted at dir. A zero ttl disables expiry. log may
// be nil.
func New(dir string, ttl time.Duration, log *zap.Logger) (*FileCache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{dir: dir, ttl: ttl, log: log}, nil
}

type entry struct {
	Schema  int                  `json:"schema"`
	SavedAt time.Time            `json:"saved_at"`
	Groups  []domain.ArtistGroup `json:"groups"`
}

// Get loads the entry for a key. Stale schema, expired TTL, and undecodable
// payloads are all misses; the offending file is removed on the way out.
func (c *FileCache) Get(key string) ([]domain.ArtistGroup, bool) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		c.log.Warn("dropping corrupt cache entry", zap.String("key", key), zap.Error(err))
		os.Remove(path)
		return nil, false
	}
	if e.Schema != schemaVersion {
		os.Remove(path)
		return nil, false
	}
	if c.ttl > 0 && time.Since(e.SavedAt) > c.ttl {
		os.Remove(path)
		return nil, false
	}
	return e.Groups, true
}

// Set writes the entry for a key atomically (temp file + rename).
func (c *FileCache) Set(key string, groups []domain.ArtistGroup) error {
	raw, err := json.Marshal(entry{
		Schema:  schemaVersion,
		SavedAt: time.Now().UTC(),
		Groups:  groups,
	})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	path := c.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// Purge removes every cache file and reports the count.
func (c *FileCache) Purge() (int, error) {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err == nil {
			removed++
		}
	}
	return removed, nil
}

// Size returns the number of stored entries.
func (c *FileCache) Size() int {
	matches, _ := filepath.Glob(filepath.Join(c.dir, "*.json"))
	return len(matches)
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps a cache key to a safe filename. Category literals like
// "???" must not leak shell or path metacharacters into the filesystem.
func sanitizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('x')
		}
	}
	return b.String()
}
