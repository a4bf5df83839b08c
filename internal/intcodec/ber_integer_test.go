package intcodec

import (
	"testing"

	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/stretchr/testify/require"
)

func TestWriteIntSeedScenarios(t *testing.T) {
	cases := []struct {
		v    int64
		want []byte
	}{
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{0, []byte{0x00}},
	}
	for _, c := range cases {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteInt(b, c.v))
		require.Equal(t, c.want, b.Bytes(), "v=%d", c.v)

		got, err := ReadInt(b, len(c.want))
		require.NoError(t, err)
		require.Equal(t, c.v, got)
	}
}

func TestWriteUintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 65535, 1 << 40} {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteUint(b, v))
		require.Equal(t, UintLength(v), b.Unread())

		got, err := ReadUint(b, UintLength(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestLEIntegerRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 127, -128, 128, -129, 1 << 30, -(1 << 30)} {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteIntLE(b, v))
		n := IntLength(v)

		got, err := ReadIntLE(b, n)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
