package hashmap

/*

# Immutable, read-optimized hash map over flat arrays

A Map is the pair of two contiguous arrays:

- the entry table: (key, value) pairs sorted ascending by hash(key)
- the index trie: a flat binary radix trie over those hashes (package trie)

It is built exactly once, from an unordered entry sequence, and never
mutated. Queries depend only on the two arrays, so arbitrarily many
goroutines may look up against the same Map with no coordination. Value
transforms (MapValues, MapWithKey) produce a new Map that shares the
receiver's trie array unchanged: value changes cannot move keys, so the
index needs no rebuild and no copy.

## Construction pipeline

New runs hash -> sort -> split -> trie build:

 1. every key is hashed by the supplied collaborator (package keyhash);
    above a size cutoff this step fans out across goroutine chunks
 2. the (hash, entry) triples are sorted ascending by hash; order within an
    equal-hash run is not guaranteed and must not be relied on
 3. the sorted sequence splits into the hash sequence and the entry table
 4. trie.Build consumes the hash sequence

## Collisions and duplicates

Key uniqueness is a caller-enforced precondition, not a checked one. Two
distinct keys whose hashes agree in all 64 bits (or duplicate keys, which
hash equally by definition) form an equal-hash run in the sorted table: the
trie references only the run's first slot, so one of them resolves and the
others are reported absent, never both. There is no chaining policy; this is
a documented limitation of the structure.

Absence is a normal result variant, never an error.

*/
