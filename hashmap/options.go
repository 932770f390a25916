package hashmap

import "runtime"

type config struct {
	workers      int
	bloomBitsPer uint64
	bloomK       uint8
}

// Option configures construction.
type Option func(*config)

// WithParallelism caps the goroutine fan-out of the hash and transform
// kernels. n <= 1 forces sequential execution. The default is GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithBloomFilter attaches a negative-membership prefilter sized at
// bitsPerKey bits per entry with k probe positions. Lookups consult it
// before descending the trie; false positives fall through, false negatives
// cannot occur. Off by default.
func WithBloomFilter(bitsPerKey uint64, k uint8) Option {
	return func(c *config) {
		c.bloomBitsPer = bitsPerKey
		c.bloomK = k
	}
}

func newConfig(opts []Option) config {
	c := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&c)
	}
	if c.workers < 1 {
		c.workers = 1
	}
	return c
}
