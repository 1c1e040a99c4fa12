// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build (amd64 || arm64) && (windows || !cgo)

package fficall

import (
	"sync"

	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/glbind/abi"
)

// DefaultSoftLimit bounds the shared cache. It is comfortably above the
// number of distinct signatures in the OpenGL 4.6 core registry.
const DefaultSoftLimit = 512

// Cache maps signatures to prepared call interfaces with a soft LRU limit.
// When the cache grows past the limit the least recently used quarter is
// dropped. Dropped interfaces stay valid for bindings that already hold them.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*cacheEntry
	softLimit int
	tick      int64

	prepares  int
	hits      int
	evictions int
}

type cacheEntry struct {
	cif   *types.CallInterface
	atime int64
}

// NewCache creates a cache with the given soft limit. 0 means unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[string]*cacheEntry),
		softLimit: softLimit,
	}
}

// shared is the process-wide cache used by the default adapter.
var shared = NewCache(DefaultSoftLimit)

// Shared returns the process-wide cache.
func Shared() *Cache { return shared }

// Get returns the call interface for sig, preparing it on first use.
// Preparation happens under the lock so a signature is never prepared twice.
func (c *Cache) Get(sig abi.Signature) (*types.CallInterface, error) {
	key := sig.Key()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		c.hits++
		return e.cif, nil
	}

	cif, err := Prepare(sig)
	if err != nil {
		return nil, err
	}
	c.prepares++
	c.entries[key] = &cacheEntry{cif: cif, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return cif, nil
}

// Len returns the number of cached interfaces.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats reports cache activity.
type Stats struct {
	Len       int
	Prepares  int
	Hits      int
	Evictions int
}

// Stats returns a snapshot of cache activity.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:       len(c.entries),
		Prepares:  c.prepares,
		Hits:      c.hits,
		Evictions: c.evictions,
	}
}

// evictOldest drops entries until the cache is at three quarters of its
// soft limit. Caller must hold c.mu.
func (c *Cache) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   string
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}

	// Selection sort is fine: evictions are rare and batches small.
	for i := 0; i < toEvict && i < len(all); i++ {
		minIdx := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[minIdx].atime {
				minIdx = j
			}
		}
		all[i], all[minIdx] = all[minIdx], all[i]
		delete(c.entries, all[i].key)
		c.evictions++
	}
}
