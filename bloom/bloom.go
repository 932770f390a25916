// Package bloom provides a probabilistic negative-membership prefilter over
// 64-bit key hashes.
//
// If the filter says "definitely not present", the element is not present.
// If it says "maybe present", the caller must fall through to the real
// lookup (false positives are possible). The filter is an I/O and
// traversal-avoidance optimization, never a correctness mechanism.
//
// Probe bits are derived by double hashing: two xxhash sums of the
// domain-tagged element select k bit positions in an LSB0 bitset (bit 0 is
// the least significant bit of byte 0).
package bloom

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	domainH1 = 0xB1
	domainH2 = 0xB2
)

var (
	ErrBadMBits = errors.New("bloom: bitset size invalid")
	ErrBadK     = errors.New("bloom: probe count invalid")
)

// Filter is a double-hashed Bloom filter over 64-bit key hashes. Once every
// element has been inserted the filter is read-only and safe for concurrent
// probes.
type Filter struct {
	bitset []byte
	mBits  uint64
	k      uint8
}

// New sizes a filter for n elements at bitsPerElement bits each, probed at
// k positions per element.
func New(n uint64, bitsPerElement uint64, k uint8) (*Filter, error) {
	if n == 0 || bitsPerElement == 0 {
		return nil, ErrBadMBits
	}
	if k == 0 {
		return nil, ErrBadK
	}
	mBits := n * bitsPerElement
	if mBits/bitsPerElement != n {
		return nil, ErrBadMBits
	}
	return &Filter{
		bitset: make([]byte, (mBits+7)/8),
		mBits:  mBits,
		k:      k,
	}, nil
}

// MBits returns the bitset size in bits.
func (f *Filter) MBits() uint64 { return f.mBits }

// K returns the probe count per element.
func (f *Filter) K() uint8 { return f.k }

// Insert marks the probe bits for h.
func (f *Filter) Insert(h uint64) {
	h1, h2 := probePair(h)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		f.bitset[j>>3] |= 1 << uint8(j&7)
	}
}

// MaybeContains checks membership for h.
//
// Returns false if the filter says "definitely not present", true if it
// says "maybe present".
func (f *Filter) MaybeContains(h uint64) bool {
	h1, h2 := probePair(h)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		if f.bitset[j>>3]&(1<<uint8(j&7)) == 0 {
			return false
		}
	}
	return true
}

func probePair(h uint64) (h1, h2 uint64) {
	// xxhash( domain || h_be8 ), once per domain tag.
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], h)
	buf[0] = domainH1
	h1 = xxhash.Sum64(buf[:])
	buf[0] = domainH2
	h2 = xxhash.Sum64(buf[:])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}
