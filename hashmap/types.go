package hashmap

import (
	"github.com/sergiodguezc/go-hashtrie/bloom"
	"github.com/sergiodguezc/go-hashtrie/keyhash"
	"github.com/sergiodguezc/go-hashtrie/trie"
)

// Entry is one key/value pair of the entry table.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an immutable associative map backed by a flat index trie and a
// hash-sorted entry table. Construct with New; see doc.go.
type Map[K comparable, V any] struct {
	nodes   []trie.Node
	entries []Entry[K, V]
	hasher  keyhash.Hasher[K]
	filter  *bloom.Filter
	workers int
}

// Nodes exposes the shared index trie array. Callers must treat it as
// read-only: the same backing array is aliased by every Map derived through
// value transforms.
func (m Map[K, V]) Nodes() []trie.Node { return m.nodes }
