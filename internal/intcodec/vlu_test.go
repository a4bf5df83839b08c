package intcodec

import (
	"testing"

	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/stretchr/testify/require"
)

func TestVLUSeedScenarios(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{0x7f, []byte{0xfe}},
		{0x80, []byte{0x01, 0x02}},
	}
	for _, c := range cases {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteVLU(b, c.v))
		require.Equal(t, c.want, b.Bytes(), "v=%#x", c.v)

		got, err := ReadVLU(b)
		require.NoError(t, err)
		require.Equal(t, c.v, got)
	}
}

func TestVLUMaxWidth(t *testing.T) {
	// 2^56-1 drives the length formula to its maximum of 8 bytes; the
	// first byte carries the 7-bit unary prefix plus one payload bit, the
	// remaining 7 bytes are pure payload.
	v := uint64(1)<<56 - 1
	b := mubuf.NewResizable(4)
	require.NoError(t, WriteVLU(b, v))
	require.Equal(t, 8, b.Unread())
	require.Equal(t, []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, b.Bytes())

	got, err := ReadVLU(b)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestVLURoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 63, 64, 127, 128, 16383, 16384, 1 << 30, (1 << 56) - 1} {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteVLU(b, v))

		got, err := ReadVLU(b)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, 0, b.Unread())
	}
}

func TestVLUAllOnesFirstByteRejected(t *testing.T) {
	b := mubuf.NewBorrowed([]byte{0xff, 1, 2, 3, 4, 5, 6, 7, 8})
	_, err := ReadVLU(b)
	require.ErrorIs(t, err, ErrVLUTooLong)
}
