package intcodec

import (
	"errors"

	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/mubuf"
)

// ErrLEB128TooLong is returned when a LEB128 value would need more than 8
// continuation groups (56 bits).
var ErrLEB128TooLong = errors.New("leb128: value exceeds 56 bits")

// LEB128Length returns the number of bytes WriteLEB128 would emit for x.
func LEB128Length(x uint64) int {
	if x == 0 {
		return 1
	}
	return 8 - (bitops.CLZ64(x)-1)/7 + 1
}

// WriteLEB128 writes x as unsigned LEB128: 7-bit little-endian groups with
// the continuation bit set on every group but the last.
func WriteLEB128(b *mubuf.Buffer, x uint64) error {
	n := LEB128Length(x)
	for i := 0; i < n-1; i++ {
		if b.WriteI8(int8(byte(x&0x7f)|0x80)) != 1 {
			return mubuf.ErrOverflow
		}
		x >>= 7
	}
	if b.WriteI8(int8(byte(x & 0x7f))) != 1 {
		return mubuf.ErrOverflow
	}
	return nil
}

// ReadLEB128 reads an unsigned LEB128 value, rejecting encodings that would
// exceed 56 bits.
func ReadLEB128(b *mubuf.Buffer) (uint64, error) {
	var v uint64
	var shift uint
	for {
		raw, n := b.ReadI8()
		if n != 1 {
			return 0, mubuf.ErrUnderflow
		}
		by := byte(raw)
		v |= uint64(by&0x7f) << shift
		shift += 7
		if by&0x80 == 0 {
			break
		}
		if shift >= 56 {
			return 0, ErrLEB128TooLong
		}
	}
	return v, nil
}
