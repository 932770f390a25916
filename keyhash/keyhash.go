// Package keyhash provides the hash collaborators the index trie branches
// on: total, deterministic functions from a key to a fixed-width 64-bit
// sum. Equal keys must produce equal sums; collision resistance is not
// required.
package keyhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	sha256 "github.com/minio/sha256-simd"
)

// Hasher derives the 64-bit hash for a key.
type Hasher[K any] interface {
	Sum64(K) uint64
}

// Func adapts a plain function to Hasher.
type Func[K any] func(K) uint64

func (f Func[K]) Sum64(k K) uint64 { return f(k) }

// StringXX hashes string keys with xxhash. This is the default choice for
// string-keyed maps.
type StringXX struct{}

func (StringXX) Sum64(k string) uint64 { return xxhash.Sum64String(k) }

// Identity64 uses uint64 keys directly as their own hash. Useful where keys
// already are fixed-width identifiers, and for deterministic tests.
type Identity64 struct{}

func (Identity64) Sum64(k uint64) uint64 { return k }

// StringSHA derives the hash from the leading 8 bytes of a sha256 digest,
// big-endian. The digest uses the SIMD-accelerated implementation where the
// CPU supports it.
type StringSHA struct{}

func (StringSHA) Sum64(k string) uint64 {
	sum := sha256.Sum256([]byte(k))
	return binary.BigEndian.Uint64(sum[:8])
}
