package trie

/*

# Flat radix trie primitives over 64-bit hashes

This package provides the index structure for an immutable, read-optimized
hash map: a binary radix trie over 64-bit key hashes, flattened into a single
contiguous node array so that building it and walking it are pointer-free
array operations.

It follows the "functional primitives" style:

- small, composable functions
- explicit layouts and index arithmetic
- a burden of knowledge on the caller for hot paths

## Tagged references

A trie has two kinds of edges: to another trie node, and to an entry in the
table the trie indexes. Both are packed into one `Ref` (uint32) whose most
significant bit is the discriminator:

	clear => remaining bits index the node array   (internal)
	set   => remaining bits index the entry table  (leaf)

`Leaf`, `Internal`, `Ref.IsLeaf` and `Ref.Index` are the only sanctioned ways
to construct and take apart a Ref.

## Node layout

Each node records the MSB-first index of the hash bit it branches on
(`Depth`), its two tagged children, and a tagged parent ref (`NoRef` for the
root). `Depth` is also the count of hash bits consumed to reach the node, so
for a node at depth d every entry under `Left` has bit d of its hash clear
and every entry under `Right` has it set.

Because the trie is path compressed (crit-bit), consecutive depths along a
path may skip bits, but they are always strictly increasing.

## Build order and the bounded walk

`Build` consumes a hash sequence sorted ascending and emits the node array
root-first: every internal child ref addresses a strictly larger node index
than its parent. That single invariant is what lets `Descend` express tree
traversal as a plain loop bounded by the array length, with no recursion and
no branching on absent children. Every step does identical work: read a
node, pick a bit, follow a ref. This keeps per-query work uniform, which is
the property a data-parallel host (one lane per query) needs.

A walk that consumes all 64 hash bits without reaching a leaf has hit a full
hash collision; the structure cannot resolve it and `Descend` reports it the
same as absence. See the package-level error values for the caller-enforced
contracts.

*/
