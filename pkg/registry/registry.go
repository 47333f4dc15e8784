// Package registry is a concurrent lookup table keyed by namespaced keys.
//
// Entries are stored under the key's Owned identity, so a lookup with a Ref
// sliced out of request text finds an entry registered with an Owned key.
package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/zeusync/axolotl/pkg/key"
)

const defaultShardCount = 16

var (
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
)

// Registry implements a hash-sharded map from namespaced keys to values
type Registry[T any] struct {
	shards []shard[T]
	count  int
	size   atomic.Int64
}

// shard represents a single shard containing its entries and its own mutex
type shard[T any] struct {
	entries map[key.Owned]T
	mx      sync.RWMutex
}

// New creates a Registry with the given number of shards
func New[T any](shardCount int) *Registry[T] {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}

	r := &Registry[T]{
		shards: make([]shard[T], shardCount),
		count:  shardCount,
	}
	for i := range r.shards {
		r.shards[i].entries = make(map[key.Owned]T)
	}
	return r
}

// getShard returns the shard for a given key
func (r *Registry[T]) getShard(k key.NamespacedKey) *shard[T] {
	return &r.shards[k.Hash()%uint64(r.count)]
}

// Register stores value under k. It fails if k is already present.
func (r *Registry[T]) Register(k key.NamespacedKey, value T) error {
	sh := r.getShard(k)
	id := k.Owned()

	sh.mx.Lock()
	defer sh.mx.Unlock()

	if _, exists := sh.entries[id]; exists {
		return ErrAlreadyRegistered
	}
	sh.entries[id] = value
	r.size.Add(1)
	return nil
}

// Set stores value under k, replacing any previous entry
func (r *Registry[T]) Set(k key.NamespacedKey, value T) {
	sh := r.getShard(k)
	id := k.Owned()

	sh.mx.Lock()
	defer sh.mx.Unlock()

	if _, exists := sh.entries[id]; !exists {
		r.size.Add(1)
	}
	sh.entries[id] = value
}

// Get returns the value stored under k
func (r *Registry[T]) Get(k key.NamespacedKey) (T, bool) {
	sh := r.getShard(k)
	namespace, name := k.Tuple()

	sh.mx.RLock()
	defer sh.mx.RUnlock()

	value, ok := sh.entries[key.New(namespace, name)]
	return value, ok
}

// Delete removes the entry stored under k
func (r *Registry[T]) Delete(k key.NamespacedKey) error {
	sh := r.getShard(k)
	namespace, name := k.Tuple()
	id := key.New(namespace, name)

	sh.mx.Lock()
	defer sh.mx.Unlock()

	if _, exists := sh.entries[id]; !exists {
		return ErrNotRegistered
	}
	delete(sh.entries, id)
	r.size.Add(-1)
	return nil
}

// Len returns the number of entries
func (r *Registry[T]) Len() int {
	return int(r.size.Load())
}

// Range calls action for every entry until it returns false.
// Iteration order is unspecified. action must not modify the registry.
func (r *Registry[T]) Range(action func(k key.Owned, value T) bool) {
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mx.RLock()
		for id, value := range sh.entries {
			if !action(id, value) {
				sh.mx.RUnlock()
				return
			}
		}
		sh.mx.RUnlock()
	}
}

// Namespace returns the keys registered under namespace
func (r *Registry[T]) Namespace(namespace string) []key.Owned {
	var keys []key.Owned
	r.Range(func(k key.Owned, _ T) bool {
		if k.Namespace() == namespace {
			keys = append(keys, k)
		}
		return true
	})
	return keys
}
