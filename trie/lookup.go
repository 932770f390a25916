package trie

// Descend walks nodes from the root by the bits of h, most significant
// first, and returns the leaf ref the walk lands on.
//
// The walk is a plain loop, never recursion: Build guarantees every
// internal child ref addresses a strictly larger node index, so the
// condition i < len(nodes) bounds the iteration count at the array length.
// Each step does identical-shape work (read a node, pick a bit, follow a
// ref), suiting one-lane-per-query parallel execution.
//
// ok=false means the node array is empty, or the walk consumed all KeyBits
// hash bits without reaching a leaf. The latter only arises from hashes
// agreeing in all 64 bits, a collision the structure cannot resolve; it is
// reported identically to absence.
//
// The caller owns the final key equality check against the entry the leaf
// ref addresses: a prefix of h matching the trie path does not imply the
// full hash, let alone the key, matches.
func Descend(nodes []Node, h uint64) (leaf Ref, ok bool) {
	for i := uint32(0); uint64(i) < uint64(len(nodes)); {
		n := nodes[i]
		if uint(n.Depth) >= KeyBits {
			return NoRef, false
		}
		c := n.Left
		if bitAt(h, n.Depth) == 1 {
			c = n.Right
		}
		if c.IsLeaf() {
			return c, true
		}
		i = c.Index()
	}
	return NoRef, false
}
