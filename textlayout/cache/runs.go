// Package cache provides a thread-safe, sharded LRU cache for shaped
// text runs. Shaping dominates layout cost, so a font collection shares
// one cache across all its paragraphs and relayouts.
package cache

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/shaping"
)

const (
	// DefaultShardCount is the number of shards for reduced lock
	// contention. Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = DefaultShardCount - 1
)

// RunKey identifies one shaped run. Every shaping parameter that
// affects the output must contribute to the key.
type RunKey struct {
	// TextHash covers the whole input text, not just the run bounds,
	// so context-sensitive shaping around the bounds stays part of the
	// identity.
	TextHash uint64

	// FaceID is a collection-assigned face identifier.
	FaceID uint64

	// LangHash is the hash of the BCP 47 language tag.
	LangHash uint64

	// Start and End are the run bounds in rune offsets.
	Start, End int32

	// SizeBits is the bit pattern of the 26.6 fixed-point font size.
	SizeBits uint32

	// Script is the resolved script tag.
	Script uint32

	// Direction is the resolved run direction.
	Direction uint8
}

// NewRunKey builds the key for one segmented shaping input. textHash
// must cover in.Text in full; faceID identifies in.Face.
func NewRunKey(in *shaping.Input, textHash, faceID uint64) RunKey {
	return RunKey{
		TextHash:  textHash,
		FaceID:    faceID,
		LangHash:  hashString(string(in.Language)),
		Start:     int32(in.RunStart),
		End:       int32(in.RunEnd),
		SizeBits:  uint32(in.Size),
		Script:    uint32(in.Script),
		Direction: uint8(in.Direction),
	}
}

// HashRunes computes the FNV-1a hash of a rune slice.
func HashRunes(text []rune) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, r := range text {
		binary.LittleEndian.PutUint32(buf[:], uint32(r))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// keyHash mixes all key fields for shard selection.
func (k *RunKey) keyHash() uint64 {
	var buf [37]byte
	binary.LittleEndian.PutUint64(buf[0:], k.TextHash)
	binary.LittleEndian.PutUint64(buf[8:], k.FaceID)
	binary.LittleEndian.PutUint64(buf[16:], k.LangHash)
	binary.LittleEndian.PutUint32(buf[24:], uint32(k.Start))
	binary.LittleEndian.PutUint32(buf[28:], uint32(k.End))
	binary.LittleEndian.PutUint32(buf[32:], k.SizeBits^k.Script)
	buf[36] = k.Direction

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// RunCache is a thread-safe, sharded LRU cache of shaped runs.
//
// Cached outputs are shared: callers must clone the glyph slice before
// mutating a hit.
type RunCache struct {
	shards   [DefaultShardCount]*shard
	capacity int // per shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.RWMutex
	entries map[RunKey]*entry
	lru     *lruList[RunKey]
}

type entry struct {
	out  *shaping.Output
	node *lruNode[RunKey]
}

// NewRunCache creates a cache holding up to capacity entries per shard.
// A capacity of zero or less selects DefaultCapacity.
func NewRunCache(capacity int) *RunCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &RunCache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[RunKey]*entry),
			lru:     newLRUList[RunKey](),
		}
	}
	return c
}

// DefaultRunCache creates a cache with the default configuration,
// DefaultShardCount times DefaultCapacity entries in total.
func DefaultRunCache() *RunCache {
	return NewRunCache(DefaultCapacity)
}

func (c *RunCache) getShard(key *RunKey) *shard {
	return c.shards[key.keyHash()&shardMask]
}

// Get returns the cached output for key and marks it most recently
// used.
func (c *RunCache) Get(key RunKey) (*shaping.Output, bool) {
	sh := c.getShard(&key)

	sh.mu.RLock()
	_, exists := sh.entries[key]
	sh.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return nil, false
	}

	sh.mu.Lock()
	// Re-check: the entry may have been evicted between the locks.
	e, ok := sh.entries[key]
	if !ok {
		sh.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	sh.lru.MoveToFront(e.node)
	out := e.out
	sh.mu.Unlock()

	c.hits.Add(1)
	return out, true
}

// Set stores an output under key, evicting the least recently used
// entries once the shard is full. The output is stored as-is, not
// copied.
func (c *RunCache) Set(key RunKey, out *shaping.Output) {
	if out == nil {
		return
	}

	sh := c.getShard(&key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if existing, ok := sh.entries[key]; ok {
		existing.out = out
		sh.lru.MoveToFront(existing.node)
		return
	}

	c.evictLocked(sh)
	node := sh.lru.PushFront(key)
	sh.entries[key] = &entry{out: out, node: node}
}

// GetOrCreate returns the cached output for key, calling create to fill
// the entry on a miss. create runs with the shard lock held, so
// concurrent lookups of the same key shape only once.
func (c *RunCache) GetOrCreate(key RunKey, create func() *shaping.Output) *shaping.Output {
	sh := c.getShard(&key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if e, ok := sh.entries[key]; ok {
		sh.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.out
	}

	c.misses.Add(1)

	out := create()
	if out == nil {
		return nil
	}

	c.evictLocked(sh)
	node := sh.lru.PushFront(key)
	sh.entries[key] = &entry{out: out, node: node}
	return out
}

// evictLocked makes room for one more entry. The shard lock must be
// held.
func (c *RunCache) evictLocked(sh *shard) {
	for sh.lru.Len() >= c.capacity {
		oldest, ok := sh.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(sh.entries, oldest)
		c.evictions.Add(1)
	}
}

// Clear removes all entries.
func (c *RunCache) Clear() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		sh.entries = make(map[RunKey]*entry)
		sh.lru.Clear()
		sh.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *RunCache) Len() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *RunCache) Capacity() int {
	return c.capacity
}

// TotalCapacity returns the capacity across all shards.
func (c *RunCache) TotalCapacity() int {
	return c.capacity * DefaultShardCount
}

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity.
	Capacity int
	// TotalCapacity is the capacity across all shards.
	TotalCapacity int
	// Hits is the number of lookups answered from the cache.
	Hits uint64
	// Misses is the number of lookups that had to shape.
	Misses uint64
	// HitRate is Hits over all lookups, 0 to 1.
	HitRate float64
	// Evictions is the number of entries dropped to make room.
	Evictions uint64
}

// Stats returns the current counters. Reads are atomic and do not block
// cache users.
func (c *RunCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	evictions := c.evictions.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.TotalCapacity(),
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     evictions,
	}
}

// ResetStats zeroes the counters.
func (c *RunCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
