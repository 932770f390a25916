package hashmap

// MapValues applies f to every value, index for index, and returns a Map
// whose trie array is the receiver's, shared not copied: values cannot move
// keys, so the index is reused verbatim. Entries are independent, so the
// kernel fans out above the size cutoff.
func MapValues[K comparable, V, U any](m Map[K, V], f func(V) U) Map[K, U] {
	return MapWithKey(m, func(_ K, v V) U { return f(v) })
}

// MapWithKey is MapValues with the key supplied to the transform. Keys
// themselves are unchanged in the result.
func MapWithKey[K comparable, V, U any](m Map[K, V], f func(K, V) U) Map[K, U] {
	out := make([]Entry[K, U], len(m.entries))
	parallelFor(m.workers, len(m.entries), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			e := m.entries[i]
			out[i] = Entry[K, U]{Key: e.Key, Value: f(e.Key, e.Value)}
		}
	})
	return Map[K, U]{
		nodes:   m.nodes,
		entries: out,
		hasher:  m.hasher,
		filter:  m.filter,
		workers: m.workers,
	}
}

// Size returns the entry count, O(1). Unresolvable members of equal-hash
// runs still count; they occupy entry-table slots.
func (m Map[K, V]) Size() int { return len(m.entries) }

// Keys projects the entry table to its keys, in hash order (not insertion
// order).
func (m Map[K, V]) Keys() []K {
	out := make([]K, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Elems projects the entry table to its values, in hash order.
func (m Map[K, V]) Elems() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Value
	}
	return out
}

// ToVector exposes the entry table directly, O(1). Callers must treat it as
// read-only; it is the live backing array of this Map.
func (m Map[K, V]) ToVector() []Entry[K, V] { return m.entries }
