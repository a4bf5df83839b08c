package mubuf

import (
	"encoding/binary"
	"fmt"
)

// WriteI8 writes a single byte. Returns bytes written (1) or 0 on
// capacity failure.
func (b *Buffer) WriteI8(v int8) int {
	if b.writeCheck(b, 1) != nil {
		return 0
	}
	b.data[b.writeMarker] = byte(v)
	b.writeMarker++
	return 1
}

// WriteI16 writes v little-endian.
func (b *Buffer) WriteI16(v int16) int {
	if b.writeCheck(b, 2) != nil {
		return 0
	}
	binary.LittleEndian.PutUint16(b.data[b.writeMarker:], uint16(v))
	b.writeMarker += 2
	return 2
}

// WriteI32 writes v little-endian.
func (b *Buffer) WriteI32(v int32) int {
	if b.writeCheck(b, 4) != nil {
		return 0
	}
	binary.LittleEndian.PutUint32(b.data[b.writeMarker:], uint32(v))
	b.writeMarker += 4
	return 4
}

// WriteI64 writes v little-endian.
func (b *Buffer) WriteI64(v int64) int {
	if b.writeCheck(b, 8) != nil {
		return 0
	}
	binary.LittleEndian.PutUint64(b.data[b.writeMarker:], uint64(v))
	b.writeMarker += 8
	return 8
}

// ReadI8 reads a single byte.
func (b *Buffer) ReadI8() (int8, int) {
	if b.readCheck(b, 1) != nil {
		return 0, 0
	}
	v := int8(b.data[b.readMarker])
	b.readMarker++
	return v, 1
}

// ReadI16 reads a little-endian int16.
func (b *Buffer) ReadI16() (int16, int) {
	if b.readCheck(b, 2) != nil {
		return 0, 0
	}
	v := int16(binary.LittleEndian.Uint16(b.data[b.readMarker:]))
	b.readMarker += 2
	return v, 2
}

// ReadI32 reads a little-endian int32.
func (b *Buffer) ReadI32() (int32, int) {
	if b.readCheck(b, 4) != nil {
		return 0, 0
	}
	v := int32(binary.LittleEndian.Uint32(b.data[b.readMarker:]))
	b.readMarker += 4
	return v, 4
}

// ReadI64 reads a little-endian int64.
func (b *Buffer) ReadI64() (int64, int) {
	if b.readCheck(b, 8) != nil {
		return 0, 0
	}
	v := int64(binary.LittleEndian.Uint64(b.data[b.readMarker:]))
	b.readMarker += 8
	return v, 8
}

// WriteByte writes a raw unsigned byte (convenience over WriteI8).
func (b *Buffer) WriteByte(v byte) int { return b.WriteI8(int8(v)) }

// ReadByte reads a raw unsigned byte (convenience over ReadI8).
func (b *Buffer) ReadByte() (byte, int) {
	v, n := b.ReadI8()
	return byte(v), n
}

// WriteBytes copies src verbatim. Returns len(src) or 0 on failure.
func (b *Buffer) WriteBytes(src []byte) int {
	if b.writeCheck(b, len(src)) != nil {
		return 0
	}
	n := copy(b.data[b.writeMarker:], src)
	b.writeMarker += n
	return n
}

// WriteString writes s as raw bytes (no length prefix).
func (b *Buffer) WriteString(s string) int {
	return b.WriteBytes([]byte(s))
}

// WriteFormat formats its arguments with fmt.Sprintf and writes the
// result as raw bytes, the same way WriteString does.
func (b *Buffer) WriteFormat(format string, args ...interface{}) int {
	s := fmt.Sprintf(format, args...)
	return b.WriteString(s)
}

// ReadBytes copies len(dst) bytes into dst. Returns bytes read or 0 on
// underflow.
func (b *Buffer) ReadBytes(dst []byte) int {
	if b.readCheck(b, len(dst)) != nil {
		return 0
	}
	n := copy(dst, b.data[b.readMarker:])
	b.readMarker += n
	return n
}

// ReadN returns a freshly allocated slice of the next n unread bytes, or
// nil on underflow.
func (b *Buffer) ReadN(n int) []byte {
	if b.readCheck(b, n) != nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b.data[b.readMarker:b.readMarker+n])
	b.readMarker += n
	return out
}

// WriteVecI32 writes count little-endian int32 values.
func (b *Buffer) WriteVecI32(vals []int32) int {
	total := len(vals) * 4
	if b.writeCheck(b, total) != nil {
		return 0
	}
	for _, v := range vals {
		binary.LittleEndian.PutUint32(b.data[b.writeMarker:], uint32(v))
		b.writeMarker += 4
	}
	return total
}

// ReadVecI32 reads len(vals) little-endian int32 values into vals.
func (b *Buffer) ReadVecI32(vals []int32) int {
	total := len(vals) * 4
	if b.readCheck(b, total) != nil {
		return 0
	}
	for i := range vals {
		vals[i] = int32(binary.LittleEndian.Uint32(b.data[b.readMarker:]))
		b.readMarker += 4
	}
	return total
}
