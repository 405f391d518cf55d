package snapshot

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Cache stores Records on disk keyed by Digest, atomically and
// content-addressed, the same shape as vovakirdan-surge's DiskCache for
// module metadata. A nil *Cache is a valid no-op cache: Put and Get both
// silently decline, so a caller can thread a possibly-absent cache through
// without a separate "caching enabled" branch.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns a Cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: opening cache at %s: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes rec under key, replacing any
// previous Record for that digest.
func (c *Cache) Put(key Digest, rec Record) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	removeTemp := true
	defer func() {
		if removeTemp {
			_ = os.Remove(f.Name())
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(rec); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	removeTemp = false
	return nil
}

// Get reads the Record stored under key. The bool result is false, with a
// nil error, when no Record exists for key.
func (c *Cache) Get(key Digest) (Record, bool, error) {
	if c == nil {
		return Record{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	defer f.Close()

	var rec Record
	if err := msgpack.NewDecoder(f).Decode(&rec); err != nil {
		return Record{}, false, err
	}
	if rec.Schema != recordSchemaVersion {
		return Record{}, false, nil
	}
	return rec, true, nil
}

// Invalidate drops every Record currently stored, useful after a schema
// version bump.
func (c *Cache) Invalidate() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old"
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
