package memoize

import (
	"sync"

	"github.com/on-the-ground/memoize/internal/helper"
)

// Cache stores computed results by cache key.
//
// Load must report presence, not truthiness: a stored zero value is still a hit.
// A memoizer serializes its own access to its cache; implementations shared by
// more than one memoizer must be safe for concurrent use.
type Cache[O any] interface {
	Load(key string) (O, bool)
	Store(key string, value O)
	Len() int
	Range(fn func(key string, value O) bool)
}

var (
	_ Cache[any] = MapCache[any](nil)
	_ Cache[any] = (*SyncMapCache[any])(nil)
	_ Cache[any] = (*ShardedCache[any])(nil)
)

// MapCache is a plain map used as memoization memory.
// It can be pre-seeded with a literal and inspected directly.
type MapCache[O any] map[string]O

func (m MapCache[O]) Load(key string) (O, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapCache[O]) Store(key string, value O) {
	m[key] = value
}

func (m MapCache[O]) Len() int {
	return len(m)
}

func (m MapCache[O]) Range(fn func(key string, value O) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

// SyncMapCache is a Cache backed by sync.Map, safe to share between memoizers.
type SyncMapCache[O any] struct {
	m *sync.Map
}

// boxed keeps a stored nil interface distinguishable from a missing key.
type boxed[O any] struct {
	value O
}

func NewSyncMapCache[O any]() *SyncMapCache[O] {
	return &SyncMapCache[O]{m: &sync.Map{}}
}

func (c *SyncMapCache[O]) Load(key string) (O, bool) {
	b, ok := helper.GetTypedValueOf2[boxed[O]](func() (any, bool) {
		return c.m.Load(key)
	})
	return b.value, ok
}

func (c *SyncMapCache[O]) Store(key string, value O) {
	c.m.Store(key, boxed[O]{value: value})
}

func (c *SyncMapCache[O]) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *SyncMapCache[O]) Range(fn func(key string, value O) bool) {
	c.m.Range(func(k, v any) bool {
		return fn(k.(string), v.(boxed[O]).value)
	})
}

// ShardedCache spreads keys over independently locked shards.
// The shard of a key is chosen by its xxhash.
type ShardedCache[O any] struct {
	shards []*shard[O]
}

type shard[O any] struct {
	mu      sync.RWMutex
	entries map[string]O
}

// NewShardedCache returns a ShardedCache with numShards shards.
// Panics if numShards is 0.
func NewShardedCache[O any](numShards int) *ShardedCache[O] {
	if numShards <= 0 {
		panic("numShards should be greater than 0")
	}
	shards := make([]*shard[O], numShards)
	for i := range shards {
		shards[i] = &shard[O]{entries: make(map[string]O)}
	}
	return &ShardedCache[O]{shards: shards}
}

func (c *ShardedCache[O]) shardOf(key string) *shard[O] {
	return c.shards[helper.IndexOf(key, len(c.shards))]
}

func (c *ShardedCache[O]) Load(key string) (O, bool) {
	s := c.shardOf(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (c *ShardedCache[O]) Store(key string, value O) {
	s := c.shardOf(key)
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

func (c *ShardedCache[O]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Range visits every entry. fn must not call back into the cache.
func (c *ShardedCache[O]) Range(fn func(key string, value O) bool) {
	for _, s := range c.shards {
		s.mu.RLock()
		for k, v := range s.entries {
			if !fn(k, v) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}
