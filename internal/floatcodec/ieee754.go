// Package floatcodec implements the three floating-point wire formats:
// raw IEEE-754 pass-through, ASN.1 BER real, and the variable-length
// vf128 encoding (f32 and f64 for each).
package floatcodec

import (
	"math"

	"github.com/scigolib/musvg/internal/mubuf"
)

// WriteF64 writes v's raw bit pattern little-endian.
func WriteF64(b *mubuf.Buffer, v float64) error {
	if b.WriteI64(int64(math.Float64bits(v))) != 8 {
		return mubuf.ErrOverflow
	}
	return nil
}

// ReadF64 reads a raw little-endian f64 bit pattern.
func ReadF64(b *mubuf.Buffer) (float64, error) {
	raw, n := b.ReadI64()
	if n != 8 {
		return 0, mubuf.ErrUnderflow
	}
	return math.Float64frombits(uint64(raw)), nil
}

// WriteF32 writes v's raw bit pattern little-endian.
func WriteF32(b *mubuf.Buffer, v float32) error {
	if b.WriteI32(int32(math.Float32bits(v))) != 4 {
		return mubuf.ErrOverflow
	}
	return nil
}

// ReadF32 reads a raw little-endian f32 bit pattern.
func ReadF32(b *mubuf.Buffer) (float32, error) {
	raw, n := b.ReadI32()
	if n != 4 {
		return 0, mubuf.ErrUnderflow
	}
	return math.Float32frombits(uint32(raw)), nil
}
