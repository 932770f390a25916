package trie

import "errors"

// KeyBits is the fixed bit width of the hashes the trie branches on.
const KeyBits = 64

// Ref is a tagged reference into either the node array or the entry table.
// See doc.go for the discriminator convention.
type Ref uint32

const (
	leafTag = Ref(1) << 31

	// NoRef marks an absent reference. It is only ever stored in a node's
	// Parent field (the root has no parent).
	NoRef = ^Ref(0)
)

// Node is one element of the flat index trie.
//
// Depth is the MSB-first index of the hash bit this node branches on,
// equivalently the number of hash bits consumed to reach it from the root.
type Node struct {
	Depth  uint8
	Left   Ref
	Right  Ref
	Parent Ref
}

var (
	ErrOutOfOrderHash   = errors.New("trie: hash sequence out of order")
	ErrTooManyEntries   = errors.New("trie: entry count does not fit in a tagged ref")
	ErrNodeStoreBadSize = errors.New("trie: node store buffer size invalid")
)
