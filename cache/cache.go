// Package cache provides a byte-budgeted LRU cache of decoded directories.
//
// Hierarchical lookups decode the same root and leaf directories
// repeatedly; caching the decoded form keyed by the directory's position
// in its archive avoids re-running the five-pass decode on every tile
// request. Eviction is driven by Directory.ApproxByteSize so memory
// pressure tracks entry capacity rather than entry count.
//
// Fetching the underlying bytes is the caller's responsibility; the cache
// never performs I/O.
package cache

import (
	"errors"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/tilekit/tiledir/directory"
	"github.com/tilekit/tiledir/internal/hash"
)

// Key identifies one directory within one archive.
//
// Archive is the xxHash64 of the archive's identifier (path, URL or etag)
// and Offset is the directory's byte offset within that archive, which
// together pin down a directory uniquely.
type Key struct {
	Archive uint64
	Offset  uint64
}

// NewKey builds a cache key from an archive identifier and the
// directory's byte offset within it.
func NewKey(archive string, offset uint64) Key {
	return Key{Archive: hash.ID(archive), Offset: offset}
}

// DirCache is a thread-safe LRU cache of decoded directories with both an
// entry-count cap and a cumulative byte budget.
//
// The byte budget sums Directory.ApproxByteSize over the cached values;
// inserting past the budget evicts least-recently-used directories until
// the total fits again.
type DirCache struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[Key, *directory.Directory]
	maxBytes int
	curBytes int
}

// New creates a DirCache holding at most maxEntries directories totaling
// at most maxBytes of approximate in-memory size.
func New(maxEntries, maxBytes int) (*DirCache, error) {
	if maxBytes <= 0 {
		return nil, errors.New("cache byte budget must be positive")
	}

	c := &DirCache{maxBytes: maxBytes}
	l, err := simplelru.NewLRU(maxEntries, func(_ Key, dir *directory.Directory) {
		// Runs under c.mu; every mutation of the LRU happens inside it
		c.curBytes -= dir.ApproxByteSize()
	})
	if err != nil {
		return nil, err
	}
	c.lru = l

	return c, nil
}

// Get returns the cached directory for key, marking it recently used.
func (c *DirCache) Get(key Key) (*directory.Directory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Get(key)
}

// Put inserts or replaces the directory for key, then evicts
// least-recently-used entries until the byte budget is respected.
func (c *DirCache) Put(key Key, dir *directory.Directory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Replacement does not trigger the evict callback, so settle the old
	// value's bytes by hand.
	if old, ok := c.lru.Peek(key); ok {
		c.curBytes -= old.ApproxByteSize()
	}

	c.lru.Add(key, dir)
	c.curBytes += dir.ApproxByteSize()

	for c.curBytes > c.maxBytes && c.lru.Len() > 1 {
		c.lru.RemoveOldest()
	}
}

// Len returns the number of cached directories.
func (c *DirCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

// Bytes returns the cumulative approximate size of the cached directories.
func (c *DirCache) Bytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.curBytes
}

// Purge drops every cached directory.
func (c *DirCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
}
