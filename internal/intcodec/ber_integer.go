package intcodec

import (
	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/mubuf"
)

// UintLength returns the minimal big-endian byte count for v (1 for v==0).
func UintLength(v uint64) int {
	if v == 0 {
		return 1
	}
	return 8 - bitops.CLZ64(v)/8
}

// WriteUint writes v as a minimal-length big-endian unsigned integer.
func WriteUint(b *mubuf.Buffer, v uint64) error {
	n := UintLength(v)
	shifted := v << uint(64-n*8)
	for i := 0; i < n; i++ {
		if b.WriteI8(int8(byte(shifted>>56))) != 1 {
			return mubuf.ErrOverflow
		}
		shifted <<= 8
	}
	return nil
}

// ReadUint reads n big-endian bytes into an unsigned integer.
func ReadUint(b *mubuf.Buffer, n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		raw, got := b.ReadI8()
		if got != 1 {
			return 0, mubuf.ErrUnderflow
		}
		v = v<<8 | uint64(byte(raw))
	}
	return v, nil
}

// IntLength returns the minimal two's-complement big-endian byte count for
// signed v.
func IntLength(v int64) int {
	if v == 0 {
		return 1
	}
	u := uint64(v)
	if v < 0 {
		u = uint64(^v)
	}
	return 8 - (bitops.CLZ64(u)-1)/8
}

// WriteInt writes v as a minimal-length two's-complement big-endian signed
// integer.
func WriteInt(b *mubuf.Buffer, v int64) error {
	n := IntLength(v)
	shifted := uint64(v) << uint(64-n*8)
	for i := 0; i < n; i++ {
		if b.WriteI8(int8(byte(shifted>>56))) != 1 {
			return mubuf.ErrOverflow
		}
		shifted <<= 8
	}
	return nil
}

// ReadInt reads n big-endian bytes and sign-extends them to int64.
func ReadInt(b *mubuf.Buffer, n int) (int64, error) {
	u, err := ReadUint(b, n)
	if err != nil {
		return 0, err
	}
	shift := uint(64 - n*8)
	return int64(u<<shift) >> shift, nil
}
