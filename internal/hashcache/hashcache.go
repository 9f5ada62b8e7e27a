package hashcache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"ordis.dev/itembuilder/internal/app/appconfig"
)

const fileName = ".hashes.json"

// Cache is the persisted per-source content-hash map. It is loaded once at
// build start; Changed compares and records in memory, Save persists the
// updated map at build end so a crashed run never advances hashes.
type Cache struct {
	// mu guards entries; sources are fetched concurrently
	mu      sync.Mutex
	path    string
	entries map[string]string
}

func New(conf *appconfig.Config) (*Cache, error) {
	c := &Cache{
		path:    filepath.Join(conf.CacheDir, fileName),
		entries: map[string]string{},
	}

	b, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", c.path).Msg("no previous hash cache, treating every source as changed")
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hash cache")
	}
	if err := json.Unmarshal(b, &c.entries); err != nil {
		return nil, errors.Wrap(err, "failed to decode hash cache")
	}
	return c, nil
}

// Hash returns the canonical content hash of b.
func Hash(b []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(b))
}

// Changed reports whether the content behind key differs from the previous
// build and records the fresh hash. A key never seen before counts as
// changed.
func (c *Cache) Changed(key string, content []byte) bool {
	return c.ChangedToken(key, Hash(content))
}

// ChangedToken is Changed for sources that publish their own content token
// (e.g. the export index), saving the download when it is already known.
func (c *Cache) ChangedToken(key, token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.entries[key]
	c.entries[key] = token
	return !ok || prev != token
}

// Save persists the updated hash map with stable key order.
func (c *Cache) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create cache dir")
	}

	// map keys marshal sorted, so the cache file itself stays diff-stable
	b, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode hash cache")
	}
	return errors.Wrap(os.WriteFile(c.path, b, 0o644), "failed to write hash cache")
}
