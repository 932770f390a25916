package hashmap_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/sergiodguezc/go-hashtrie/hashmap"
	"github.com/sergiodguezc/go-hashtrie/keyhash"
	"github.com/sergiodguezc/go-hashtrie/maptesting"
)

// TestEndToEndWithPrefilter drives the full pipeline the way a hosting
// application would: bulk build with the bloom prefilter and bounded
// parallelism, then mixed present/absent queries and a value transform.
func TestEndToEndWithPrefilter(t *testing.T) {
	tc := maptesting.NewTestContext(t, maptesting.TestConfig{Seed: 23, LabelPrefix: "e2e"})
	entries := tc.GenerateStringEntries(4000)

	m, err := hashmap.New(entries, keyhash.StringXX{},
		hashmap.WithBloomFilter(10, 7),
		hashmap.WithParallelism(4),
	)
	assert.NilError(t, err)
	assert.Equal(t, len(entries), m.Size())

	for _, e := range entries {
		v, ok := m.Lookup(e.Key)
		assert.Assert(t, ok)
		assert.Equal(t, e.Value, v)
	}

	miss := maptesting.NewTestContext(t, maptesting.TestConfig{Seed: 23, LabelPrefix: "miss"})
	for _, e := range miss.GenerateStringEntries(1000) {
		assert.Assert(t, !m.Member(e.Key))
	}

	// The entry table order is the hash order.
	hasher := keyhash.StringXX{}
	keys := m.Keys()
	for i := 1; i < len(keys); i++ {
		assert.Assert(t, hasher.Sum64(keys[i-1]) <= hasher.Sum64(keys[i]))
	}

	// A transform keeps the prefilter and index effective for the same keys.
	m2 := hashmap.MapValues(m, func(v string) int { return len(v) })
	for _, e := range entries {
		n, ok := m2.Lookup(e.Key)
		assert.Assert(t, ok)
		assert.Equal(t, len(e.Value), n)
	}
}

func TestSHAHasherBackedMap(t *testing.T) {
	tc := maptesting.NewTestContext(t, maptesting.TestConfig{Seed: 29, LabelPrefix: "sha"})
	entries := tc.GenerateStringEntries(256)

	m, err := hashmap.New(entries, keyhash.StringSHA{})
	assert.NilError(t, err)

	for _, e := range entries {
		v, ok := m.Lookup(e.Key)
		assert.Assert(t, ok)
		assert.Equal(t, e.Value, v)
	}
}
