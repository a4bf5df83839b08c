package intcodec

import "github.com/scigolib/musvg/internal/mubuf"

// WriteUintLE writes v as a minimal-length little-endian unsigned integer.
// Length follows the same rule as WriteUint; only byte order differs.
func WriteUintLE(b *mubuf.Buffer, v uint64) error {
	n := UintLength(v)
	shifted := v
	for i := 0; i < n; i++ {
		if b.WriteI8(int8(byte(shifted))) != 1 {
			return mubuf.ErrOverflow
		}
		shifted >>= 8
	}
	return nil
}

// ReadUintLE reads n little-endian bytes into an unsigned integer.
func ReadUintLE(b *mubuf.Buffer, n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		raw, got := b.ReadI8()
		if got != 1 {
			return 0, mubuf.ErrUnderflow
		}
		v |= uint64(byte(raw)) << uint(8*i)
	}
	return v, nil
}

// WriteIntLE writes v as a minimal-length two's-complement little-endian
// signed integer.
func WriteIntLE(b *mubuf.Buffer, v int64) error {
	n := IntLength(v)
	shifted := uint64(v)
	for i := 0; i < n; i++ {
		if b.WriteI8(int8(byte(shifted))) != 1 {
			return mubuf.ErrOverflow
		}
		shifted >>= 8
	}
	return nil
}

// ReadIntLE reads n little-endian bytes and sign-extends them to int64.
func ReadIntLE(b *mubuf.Buffer, n int) (int64, error) {
	u, err := ReadUintLE(b, n)
	if err != nil {
		return 0, err
	}
	shift := uint(64 - n*8)
	return int64(u<<shift) >> shift, nil
}
