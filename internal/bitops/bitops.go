// Package bitops provides the count-leading/trailing-zero primitives
// every codec in this module builds on. They are thin wrappers
// over math/bits rather than hand-rolled loops: math/bits.LeadingZeros64
// and friends are the direct Go equivalent of the clz/ctz compiler
// builtins the format's reference implementation assumes, so there is no
// reason to reimplement them.
package bitops

import "math/bits"

// CLZ64 returns the number of leading zero bits in v. The caller must
// never pass v == 0 (the codecs that use this guard that case explicitly,
// since clz(0) is undefined in the format this module implements).
func CLZ64(v uint64) int { return bits.LeadingZeros64(v) }

// CTZ64 returns the number of trailing zero bits in v. Caller must not
// pass v == 0.
func CTZ64(v uint64) int { return bits.TrailingZeros64(v) }

// CLZ32 returns the number of leading zero bits in v (32-bit width).
func CLZ32(v uint32) int { return bits.LeadingZeros32(v) }

// CTZ32 returns the number of trailing zero bits in v (32-bit width).
func CTZ32(v uint32) int { return bits.TrailingZeros32(v) }

// NibbleCLZ4 returns the number of leading zero bits within a 4-bit field
// (0..4). Used for the vf128 inline-subnormal mantissa nibble.
func NibbleCLZ4(v uint8) int {
	if v == 0 {
		return 4
	}
	return bits.LeadingZeros8(v) - 4
}

// IsPow2 reports whether v is an exact power of two (v != 0).
func IsPow2(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
