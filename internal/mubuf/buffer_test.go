package mubuf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedBufferCursorInvariant(t *testing.T) {
	b := NewFixed(8)
	require.Equal(t, 4, b.WriteI32(0x01020304))
	require.Equal(t, 0, b.readMarker)
	require.Equal(t, 4, b.writeMarker)

	// Overflow write leaves cursors unchanged.
	n := b.WriteBytes([]byte{1, 2, 3, 4, 5})
	require.Equal(t, 0, n)
	require.Equal(t, 4, b.writeMarker)

	v, n := b.ReadI32()
	require.Equal(t, 4, n)
	require.Equal(t, int32(0x01020304), v)
	require.Equal(t, 4, b.readMarker)

	// Underflow read leaves cursors unchanged.
	_, n = b.ReadI32()
	require.Equal(t, 0, n)
	require.Equal(t, 4, b.readMarker)
}

func TestResizableBufferGrows(t *testing.T) {
	b := NewResizable(4)
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	n := b.WriteBytes(data)
	require.Equal(t, 100, n)
	require.GreaterOrEqual(t, b.Size(), 100)
	require.True(t, b.Size()&(b.Size()-1) == 0, "size must be a power of two")
}

func TestBorrowedBufferRoundTrip(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b := NewBorrowed(src)
	v, n := b.ReadI32()
	require.Equal(t, 4, n)
	require.Equal(t, uint32(0xEFBEADDE), uint32(v))
}

func TestWriterReaderFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")

	w, err := NewWriterFile(path, 8)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.Equal(t, 4, w.WriteI32(int32(i)))
	}
	require.NoError(t, w.Close())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(4000), fi.Size())

	r, err := NewReaderFile(path, 8)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v, n := r.ReadI32()
		require.Equal(t, 4, n)
		require.Equal(t, int32(i), v)
	}
	require.NoError(t, r.Close())
}

func TestWriteFormat(t *testing.T) {
	b := NewResizable(4)
	n := b.WriteFormat("%s(%d,%d)", "translate", 3, 4)
	require.Equal(t, len("translate(3,4)"), n)
	require.Equal(t, "translate(3,4)", string(b.Bytes()))
}
