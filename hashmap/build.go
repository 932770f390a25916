package hashmap

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sergiodguezc/go-hashtrie/bloom"
	"github.com/sergiodguezc/go-hashtrie/keyhash"
	"github.com/sergiodguezc/go-hashtrie/trie"
)

// parallelCutoff is the element count below which the kernels run on the
// calling goroutine; fan-out overhead dominates under it.
const parallelCutoff = 2048

// keyedEntry pairs an entry with its key hash for the sort step.
type keyedEntry[K comparable, V any] struct {
	hash uint64
	ent  Entry[K, V]
}

// New builds a Map from an unordered entry sequence and the hash
// collaborator for its key type.
//
// Keys are expected to be unique. Duplicate keys are not detected; they
// behave exactly like full hash collisions (see doc.go).
//
// Above the size cutoff the hash step runs Sum64 concurrently from several
// goroutines, so hasher must be safe for concurrent use. The keyhash
// hashers are; a stateful Func closure is not.
//
// The input slice is not retained; the entry table is a fresh array.
func New[K comparable, V any](entries []Entry[K, V], hasher keyhash.Hasher[K], opts ...Option) (Map[K, V], error) {
	cfg := newConfig(opts)
	n := len(entries)
	if err := trie.CheckEntryCount(uint64(n)); err != nil {
		return Map[K, V]{}, err
	}

	triples := make([]keyedEntry[K, V], n)
	parallelFor(cfg.workers, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			triples[i] = keyedEntry[K, V]{hash: hasher.Sum64(entries[i].Key), ent: entries[i]}
		}
	})

	slices.SortFunc(triples, func(a, b keyedEntry[K, V]) int {
		return cmp.Compare(a.hash, b.hash)
	})

	hashes := make([]uint64, n)
	table := make([]Entry[K, V], n)
	for i, t := range triples {
		hashes[i] = t.hash
		table[i] = t.ent
	}

	// Sorted by construction, so the builder's ordering contract holds and
	// only the capacity error (already checked) could fire.
	nodes, err := trie.Build(hashes)
	if err != nil {
		return Map[K, V]{}, err
	}

	m := Map[K, V]{
		nodes:   nodes,
		entries: table,
		hasher:  hasher,
		workers: cfg.workers,
	}

	if cfg.bloomBitsPer > 0 && n > 0 {
		f, err := bloom.New(uint64(n), cfg.bloomBitsPer, cfg.bloomK)
		if err != nil {
			return Map[K, V]{}, err
		}
		for _, h := range hashes {
			f.Insert(h)
		}
		m.filter = f
	}

	return m, nil
}

// parallelFor runs fn over disjoint chunks of [0, n). fn must be safe to
// run concurrently on disjoint ranges and must not report failure; every
// kernel here is a pure per-element computation.
func parallelFor(workers, n int, fn func(lo, hi int)) {
	if workers <= 1 || n < parallelCutoff {
		fn(0, n)
		return
	}
	g := new(errgroup.Group)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
