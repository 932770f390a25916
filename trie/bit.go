package trie

import "math/bits"

// bitAt returns the bit at index i where i=0 is the MSB (bit 63).
func bitAt(x uint64, i uint8) uint8 {
	shift := 63 - i
	return uint8((x >> shift) & 1)
}

// critBit returns the first differing MSB-first bit index between a and b.
// ok=false indicates a==b.
func critBit(a, b uint64) (idx uint8, ok bool) {
	x := a ^ b
	if x == 0 {
		return 0, false
	}
	return uint8(bits.LeadingZeros64(x)), true
}
