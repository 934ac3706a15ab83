// Package bmap implements basic map with []byte key type.
package bmap

import (
	"unsafe"
)

// BMap implements generic hashmap with []byte key type.
// It is intended for lookup tables keyed by serialized records, such as
// automaton state keys: keys are added once and cannot be deleted.
// Added keys are copied into internal byte slice for safety.
// Uses map with string keys internally.
type BMap[T any] struct {
	keys []byte
	smap map[string]T
}

// New creates bytes map. size hints the expected number of stored keys.
func New[T any](size int) *BMap[T] {
	return &BMap[T]{
		smap: make(map[string]T, size),
	}
}

// Get returns stored value by key and a flag telling whether this key is stored in the map.
// Returns zero value if the key is not present.
func (m *BMap[T]) Get(key []byte) (T, bool) {
	result, has := m.smap[view(key)]
	return result, has
}

// Set adds or rewrites value for given key.
func (m *BMap[T]) Set(key []byte, value T) {
	_, has := m.Get(key)
	if !has && len(key) != 0 {
		ofs := len(m.keys)
		m.keys = append(m.keys, key...)
		key = m.keys[ofs : ofs+len(key)]
	}

	m.smap[view(key)] = value
}

// Len returns the number of stored keys.
func (m *BMap[T]) Len() int {
	return len(m.smap)
}

func view(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	return unsafe.String(&key[0], len(key))
}
