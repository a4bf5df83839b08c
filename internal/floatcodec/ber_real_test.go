package floatcodec

import (
	"math"
	"testing"

	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/stretchr/testify/require"
)

func roundTripBERReal64(t *testing.T, v float64) float64 {
	t.Helper()
	b := mubuf.NewResizable(8)
	require.NoError(t, WriteBERReal64(b, v))
	length, err := BERRealLength64(v)
	require.NoError(t, err)
	require.Equal(t, length, b.Unread())

	got, err := ReadBERReal64(b, length)
	require.NoError(t, err)
	return got
}

func TestBERReal64FiniteNormalRoundTrip(t *testing.T) {
	values := []float64{1.0, -1.0, 2.0, 0.5, 3.14159265358979, 1e10, -1e-10, 12345.6789, 1.0 / 3.0}
	for _, v := range values {
		got := roundTripBERReal64(t, v)
		require.Equal(t, v, got, "v=%v", v)
	}
}

func TestBERReal64Specials(t *testing.T) {
	require.True(t, math.IsInf(roundTripBERReal64(t, math.Inf(1)), 1))
	require.True(t, math.IsInf(roundTripBERReal64(t, math.Inf(-1)), -1))
	require.True(t, math.IsNaN(roundTripBERReal64(t, math.NaN())))

	z := roundTripBERReal64(t, 0.0)
	require.Equal(t, 0.0, z)
	require.False(t, math.Signbit(z))

	nz := roundTripBERReal64(t, math.Copysign(0, -1))
	require.Equal(t, 0.0, nz)
	require.True(t, math.Signbit(nz))
}

func TestBERReal64RejectsReservedExpCode(t *testing.T) {
	b := mubuf.NewResizable(4)
	require.Equal(t, 1, b.WriteByte(0x80|0x02)) // expCode=2, reserved
	_, err := ReadBERReal64(b, 1)
	require.ErrorIs(t, err, ErrBERRealExpCode)
}

func TestBERReal64RejectsNonBase2(t *testing.T) {
	b := mubuf.NewResizable(4)
	require.Equal(t, 1, b.WriteByte(0x80|0x10)) // base bits nonzero
	_, err := ReadBERReal64(b, 1)
	require.ErrorIs(t, err, ErrBERRealBase)
}

func roundTripBERReal32(t *testing.T, v float32) float32 {
	t.Helper()
	b := mubuf.NewResizable(8)
	require.NoError(t, WriteBERReal32(b, v))
	length, err := BERRealLength32(v)
	require.NoError(t, err)
	require.Equal(t, length, b.Unread())

	got, err := ReadBERReal32(b, length)
	require.NoError(t, err)
	return got
}

func TestBERReal32FiniteNormalRoundTrip(t *testing.T) {
	values := []float32{1.0, -1.0, 2.0, 0.5, 3.14159, 12345.6789, -0.001}
	for _, v := range values {
		got := roundTripBERReal32(t, v)
		require.Equal(t, v, got, "v=%v", v)
	}
}
