// Package maptesting provides seeded test-data generation for the hashmap
// packages. Generated data is a pure function of the configured seed, so
// failures reproduce run to run.
package maptesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sergiodguezc/go-hashtrie/hashmap"
)

type TestConfig struct {
	// Seed fixes the RNG so the generated data is the same from run to run.
	Seed int64
	// LabelPrefix namespaces generated keys, so entries from differently
	// labelled contexts never collide as keys.
	LabelPrefix string
}

type TestContext struct {
	T   *testing.T
	Cfg TestConfig
	Rng *rand.Rand
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.LabelPrefix == "" {
		cfg.LabelPrefix = "maptesting"
	}
	return &TestContext{
		T:   t,
		Cfg: cfg,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// GenerateStringEntries returns n entries with unique uuid-derived keys and
// random hex values, all drawn from the seeded rng.
func (c *TestContext) GenerateStringEntries(n int) []hashmap.Entry[string, string] {
	entries := make([]hashmap.Entry[string, string], n)
	for i := range entries {
		u, err := uuid.NewRandomFromReader(c.Rng)
		require.NoError(c.T, err)

		var v [16]byte
		_, err = c.Rng.Read(v[:])
		require.NoError(c.T, err)

		entries[i] = hashmap.Entry[string, string]{
			Key:   fmt.Sprintf("%s/%s", c.Cfg.LabelPrefix, u.String()),
			Value: fmt.Sprintf("%x", v),
		}
	}
	return entries
}

// GenerateUint64Entries returns n entries keyed by distinct random uint64s.
func (c *TestContext) GenerateUint64Entries(n int) []hashmap.Entry[uint64, uint64] {
	seen := make(map[uint64]bool, n)
	entries := make([]hashmap.Entry[uint64, uint64], 0, n)
	for len(entries) < n {
		k := c.Rng.Uint64()
		if seen[k] {
			continue
		}
		seen[k] = true
		entries = append(entries, hashmap.Entry[uint64, uint64]{Key: k, Value: c.Rng.Uint64()})
	}
	return entries
}
