package hashmap_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergiodguezc/go-hashtrie/hashmap"
	"github.com/sergiodguezc/go-hashtrie/keyhash"
	"github.com/sergiodguezc/go-hashtrie/maptesting"
)

// TestFixedHashScenario pins the observable behavior for a tiny map with an
// identity hash, where the hash order is the key order.
func TestFixedHashScenario(t *testing.T) {
	m, err := hashmap.New([]hashmap.Entry[uint64, string]{
		{Key: 1, Value: "a"},
		{Key: 5, Value: "b"},
		{Key: 3, Value: "c"},
	}, keyhash.Identity64{})
	require.NoError(t, err)

	v, ok := m.Lookup(5)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = m.Lookup(9)
	require.False(t, ok)

	require.Equal(t, 3, m.Size())
	require.Equal(t, []uint64{1, 3, 5}, m.Keys())
	require.Equal(t, []string{"a", "c", "b"}, m.Elems())

	v, i, ok := m.LookupWithIndex(3)
	require.True(t, ok)
	require.Equal(t, "c", v)
	require.Equal(t, 1, i)
	require.Equal(t, hashmap.Entry[uint64, string]{Key: 3, Value: "c"}, m.ToVector()[i])
}

func TestRoundTripUint64Identity(t *testing.T) {
	tc := maptesting.NewTestContext(t, maptesting.TestConfig{Seed: 13})
	entries := tc.GenerateUint64Entries(3000)

	m, err := hashmap.New(entries, keyhash.Identity64{})
	require.NoError(t, err)

	for _, e := range entries {
		v, ok := m.Lookup(e.Key)
		require.True(t, ok)
		require.Equal(t, e.Value, v)
	}

	// With an identity hash the key projection is simply sorted.
	keys := m.Keys()
	require.True(t, slices.IsSorted(keys))
	require.Equal(t, len(entries), len(keys))
}

func TestEmptyMap(t *testing.T) {
	m, err := hashmap.New[string, int](nil, keyhash.StringXX{})
	require.NoError(t, err)

	require.Equal(t, 0, m.Size())
	require.False(t, m.Member("anything"))
	require.Empty(t, m.Keys())
	require.Empty(t, m.ToVector())

	// An empty non-nil input behaves identically.
	m, err = hashmap.New([]hashmap.Entry[string, int]{}, keyhash.StringXX{})
	require.NoError(t, err)
	require.Equal(t, 0, m.Size())
	require.False(t, m.Member("anything"))
}

func TestSingleEntryMap(t *testing.T) {
	m, err := hashmap.New([]hashmap.Entry[string, int]{{Key: "only", Value: 1}}, keyhash.StringXX{})
	require.NoError(t, err)

	v, ok := m.Lookup("only")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.False(t, m.Member("other"))
}
