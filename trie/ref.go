package trie

// Leaf returns a ref addressing entry table position i.
func Leaf(i uint32) Ref { return leafTag | Ref(i) }

// Internal returns a ref addressing node array position i.
func Internal(i uint32) Ref { return Ref(i) }

// IsLeaf reports whether r addresses the entry table.
func (r Ref) IsLeaf() bool { return r&leafTag != 0 }

// Index recovers the untagged array position.
func (r Ref) Index() uint32 { return uint32(r &^ leafTag) }
