package hashmap

import "github.com/sergiodguezc/go-hashtrie/trie"

// Lookup returns the value stored for key. Absence is a normal result, not
// an error.
func (m Map[K, V]) Lookup(key K) (V, bool) {
	v, _, ok := m.LookupWithIndex(key)
	return v, ok
}

// LookupWithIndex returns the value for key and its entry-table position.
//
// The trie descent only proves a hash-prefix match, so the entry the leaf
// ref addresses is compared against key before reporting presence. A
// distinct key whose hash fully collides with a stored one is reported
// absent (see doc.go).
func (m Map[K, V]) LookupWithIndex(key K) (V, int, bool) {
	var zero V
	h := m.hasher.Sum64(key)
	if m.filter != nil && !m.filter.MaybeContains(h) {
		return zero, 0, false
	}
	leaf, ok := trie.Descend(m.nodes, h)
	if !ok {
		return zero, 0, false
	}
	i := int(leaf.Index())
	if e := m.entries[i]; e.Key == key {
		return e.Value, i, true
	}
	return zero, 0, false
}

// Member reports whether key is present.
func (m Map[K, V]) Member(key K) bool {
	_, _, ok := m.LookupWithIndex(key)
	return ok
}
