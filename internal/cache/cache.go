package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"rompdb/internal"
	"rompdb/internal/database"
	"rompdb/internal/pipeline"
)

// Cache memoizes one build of the canonical table, keyed by a
// fingerprint of the source set (path, size, mtime of every workbook).
// Repeated Gets within a session reuse the table until the data
// directory changes.
type Cache struct {
	dir string

	mu          sync.Mutex
	fingerprint string
	table       *database.Table
	stats       internal.BuildStats
}

func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Get returns the cached table, rebuilding first if the source set
// changed since the last call. rebuilt reports whether a build ran.
func (c *Cache) Get() (table *database.Table, stats internal.BuildStats, rebuilt bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths, err := pipeline.DiscoverSources(c.dir)
	if err != nil {
		return nil, internal.BuildStats{}, false, err
	}

	fp, err := fingerprint(paths)
	if err != nil {
		return nil, internal.BuildStats{}, false, err
	}
	if c.table != nil && fp == c.fingerprint {
		return c.table, c.stats, false, nil
	}

	table, stats, err = pipeline.Build(paths)
	if err != nil {
		return nil, internal.BuildStats{}, false, err
	}
	c.fingerprint = fp
	c.table = table
	c.stats = stats
	return table, stats, true, nil
}

// Invalidate forces the next Get to rebuild.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fingerprint = ""
	c.table = nil
}

// fingerprint identifies a source set by each file's path, size, and
// modification time.
func fingerprint(paths []string) (string, error) {
	h := sha256.New()
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
