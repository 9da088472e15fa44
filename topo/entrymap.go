// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "sync"

// EntryMap is an insert-on-first-lookup map keyed by topological
// identity: for each distinct key, GetOrInsert produces exactly one
// value and reuses it everywhere that key appears again (spec.md §9,
// "Identity-preserving duplication of a topology graph"). It plays the
// same role as the teacher's registry-by-name lookup
// (mdl/gen.allocators / gen.New) generalized from a static name table
// to an arbitrary identity key, and the same role as
// truck_base::entry_map::FxEntryMap in the original Rust source.
//
// The zero value is not ready to use; call NewEntryMap.
type EntryMap[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

// NewEntryMap returns an empty EntryMap.
func NewEntryMap[K comparable, V any]() *EntryMap[K, V] {
	return &EntryMap[K, V]{entries: make(map[K]V)}
}

// GetOrInsert returns the existing value for key, or calls make,
// stores its result and returns that, if key has not been seen
// before. Safe for concurrent use — the single-threaded driver calls
// it lazily in iteration order (spec.md §4.7), the parallel driver
// only ever calls it during the eager pre-materialization pass, never
// concurrently with a lookup.
func (m *EntryMap[K, V]) GetOrInsert(key K, make_ func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[key]; ok {
		return v
	}
	v := make_()
	m.entries[key] = v
	return v
}

// Get returns the value stored for key, if any.
func (m *EntryMap[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of distinct identities materialized so far.
func (m *EntryMap[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
