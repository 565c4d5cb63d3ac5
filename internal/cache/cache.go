package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Entry is one cached change payload.
type Entry struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	TTL       int             `json:"ttl"`
}

// Cache is a file-based store for change payloads fetched from the backend.
type Cache struct {
	dir        string
	ttlSeconds int
	enabled    bool
	now        func() time.Time
}

// New creates a new Cache. If dir is empty, uses the default cache directory.
// A ttlSeconds of zero or less keeps entries forever.
func New(enabled bool, dir string, ttlSeconds int) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false, now: time.Now}, nil
	}
	if dir == "" {
		d, err := defaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}
	return &Cache{
		dir:        dir,
		ttlSeconds: ttlSeconds,
		enabled:    true,
		now:        time.Now,
	}, nil
}

// CommitKey is the cache key of a commit's change payload.
func CommitKey(sha string) string {
	return "commit:" + sha
}

// PRKey is the cache key of a pull request's change payload.
func PRKey(number int) string {
	return "pr:" + strconv.Itoa(number)
}

// Get retrieves a cached payload by key. Returns (nil, false) on miss.
// Expired entries are removed.
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	if !c.enabled {
		return nil, false
	}
	path := c.entryPath(key)
	entry, err := readEntry(path)
	if err != nil {
		return nil, false
	}
	if c.expired(entry) {
		os.Remove(path)
		return nil, false
	}
	return entry.Payload, true
}

// Put stores a payload in the cache.
func (c *Cache) Put(key string, payload json.RawMessage) error {
	if !c.enabled {
		return nil
	}
	if !json.Valid(payload) {
		return errors.Errorf("cache payload for %s is not valid JSON", key)
	}
	entry := Entry{
		Key:       key,
		Payload:   payload,
		CreatedAt: c.now(),
		TTL:       c.ttlSeconds,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshaling cache entry")
	}
	return os.WriteFile(c.entryPath(key), data, 0o644)
}

// Clear removes all cache entries and reports how many were removed.
func (c *Cache) Clear() (int, error) {
	if !c.enabled || c.dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "reading cache directory")
	}
	var removed int
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			if err := os.Remove(filepath.Join(c.dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// Stats returns cache statistics.
type Stats struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
	Expired    int    `json:"expired"`
}

// GetStats returns information about the cache.
func (c *Cache) GetStats() (Stats, error) {
	stats := Stats{Dir: c.dir}
	if !c.enabled || c.dir == "" {
		return stats, nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, errors.Wrap(err, "reading cache directory")
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()

		entry, err := readEntry(filepath.Join(c.dir, e.Name()))
		if err != nil {
			continue
		}
		if c.expired(entry) {
			stats.Expired++
		}
	}
	return stats, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

// Enabled returns whether caching is enabled.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// HashKey creates a SHA-256 hash of the given key material.
func HashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h)
}

func (c *Cache) expired(e Entry) bool {
	return c.ttlSeconds > 0 && c.now().Sub(e.CreatedAt) > time.Duration(c.ttlSeconds)*time.Second
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, HashKey(key)+".json")
}

func readEntry(path string) (Entry, error) {
	var entry Entry
	data, err := os.ReadFile(path)
	if err != nil {
		return entry, err
	}
	err = json.Unmarshal(data, &entry)
	return entry, err
}

func defaultCacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "sheetdiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine home directory")
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "sheetdiff"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "sheetdiff", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "sheetdiff", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "sheetdiff"), nil
	}
}
