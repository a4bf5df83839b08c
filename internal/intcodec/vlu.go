package intcodec

import (
	"errors"

	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/mubuf"
)

// ErrVLUTooLong is returned when a VLU value or encoding would need more
// than 8 bytes.
var ErrVLUTooLong = errors.New("vlu: value exceeds 8 bytes")

// VLULength returns the number of bytes WriteVLU would emit for x. The
// length formula matches LEB128Length: the first byte's trailing-one-bit
// count (plus one) gives the total byte count.
func VLULength(x uint64) int {
	if x == 0 {
		return 1
	}
	return 8 - (bitops.CLZ64(x)-1)/7 + 1
}

// WriteVLU writes x in VLU form: the first byte's low bits hold a unary
// run of (len-1) one-bits terminated by a zero, followed by the payload;
// len-1 bytes trailing the first carry the rest of x, little-endian.
func WriteVLU(b *mubuf.Buffer, x uint64) error {
	n := VLULength(x)
	if n > 8 {
		return ErrVLUTooLong
	}
	v := (x << uint(n)) | (uint64(1)<<uint(n-1) - 1)
	for i := 0; i < n; i++ {
		if b.WriteI8(int8(byte(v))) != 1 {
			return mubuf.ErrOverflow
		}
		v >>= 8
	}
	return nil
}

// ReadVLU reads a VLU-encoded value.
func ReadVLU(b *mubuf.Buffer) (uint64, error) {
	raw, n := b.ReadI8()
	if n != 1 {
		return 0, mubuf.ErrUnderflow
	}
	first := byte(raw)
	inv := uint64(^first) & 0xff
	var length int
	if inv == 0 {
		length = 9
	} else {
		length = bitops.CTZ64(inv) + 1
	}
	if length > 8 {
		return 0, ErrVLUTooLong
	}
	var rest uint64
	if length > 1 {
		r, err := ReadUintLE(b, length-1)
		if err != nil {
			return 0, err
		}
		rest = r
	}
	v := (uint64(first) >> uint(length)) | (rest << uint(8-length))
	return v, nil
}
