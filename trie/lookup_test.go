package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescendEmpty(t *testing.T) {
	_, ok := Descend(nil, 123)
	require.False(t, ok)
}

func TestDescendAbsentHashLandsOnSomeLeaf(t *testing.T) {
	// An absent hash still reaches a leaf: descent only ever proves a
	// prefix match, and the caller's key comparison decides.
	nodes, err := Build([]uint64{10, 20, 30, 40})
	require.NoError(t, err)

	leaf, ok := Descend(nodes, 25)
	require.True(t, ok)
	require.True(t, leaf.IsLeaf())
	require.Less(t, leaf.Index(), uint32(4))
}

func TestDescendDepthExhaustion(t *testing.T) {
	// Build never emits a node at depth >= KeyBits; hand-craft one to
	// exercise the exhaustion guard.
	nodes := []Node{{Depth: KeyBits, Left: Leaf(0), Right: Leaf(0), Parent: NoRef}}
	_, ok := Descend(nodes, 0)
	require.False(t, ok)
}

func TestRefTagging(t *testing.T) {
	require.True(t, Leaf(7).IsLeaf())
	require.False(t, Internal(7).IsLeaf())
	require.Equal(t, uint32(7), Leaf(7).Index())
	require.Equal(t, uint32(7), Internal(7).Index())
}
