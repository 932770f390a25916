package trie

// MaxEntries is the largest entry table a tagged ref can address.
const MaxEntries = uint64(leafTag)

// NodeCountMax returns the maximum node count for a trie indexing n entries.
// A crit-bit trie over n >= 2 distinct hashes has exactly n-1 branch nodes;
// for n == 1 a single sentinel node is emitted so descent always starts on
// a node.
func NodeCountMax(n uint64) uint64 {
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return n - 1
	}
}

// NodeStoreBytes returns the packed store size for a trie indexing n
// entries, allocated at the maximum possible node count.
func NodeStoreBytes(n uint64) uint64 {
	return NodeCountMax(n) * NodeRecordBytes
}

// CheckEntryCount checks whether n entries can be addressed by leaf refs.
func CheckEntryCount(n uint64) error {
	if n > MaxEntries {
		return ErrTooManyEntries
	}
	return nil
}
