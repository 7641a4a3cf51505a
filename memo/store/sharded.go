package store

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

type shardedStore[K comparable, V any] struct {
	shards []*shard[K, V]
}

// NewSharded returns an in-memory backend split into numShards maps, each
// behind its own lock. A key's shard is picked by hashing its printed form;
// equality is still decided on the key itself.
//
// numShards <= 0 is treated as 1.
func NewSharded[K comparable, V any](numShards int) Store[K, V] {
	if numShards <= 0 {
		numShards = 1
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return &shardedStore[K, V]{shards: shards}
}

func (s *shardedStore[K, V]) shardOf(key K) *shard[K, V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	idx := xxhash.Sum64String(fmt.Sprint(key)) % uint64(len(s.shards))
	return s.shards[idx]
}

func (s *shardedStore[K, V]) Load(key K) (value V, ok bool, err error) {
	sh := s.shardOf(key)
	sh.mu.RLock()
	value, ok = sh.m[key]
	sh.mu.RUnlock()
	return
}

func (s *shardedStore[K, V]) Store(key K, value V) error {
	sh := s.shardOf(key)
	sh.mu.Lock()
	if _, exists := sh.m[key]; !exists {
		sh.m[key] = value
	}
	sh.mu.Unlock()
	return nil
}
