package floatcodec

import (
	"math"
	"testing"

	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/stretchr/testify/require"
)

func roundTripVF128F64(t *testing.T, v float64) (float64, int) {
	t.Helper()
	b := mubuf.NewResizable(8)
	require.NoError(t, WriteVF128F64(b, v))
	n := b.Unread()
	got, err := ReadVF128F64(b)
	require.NoError(t, err)
	return got, n
}

func TestVF128F64SeedBytes(t *testing.T) {
	cases := []struct {
		v    float64
		want byte
	}{
		{1.0, 0x10},
		{-1.0, 0x50},
		{2.0, 0x20},
		{0.0, 0x00},
	}
	for _, c := range cases {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteVF128F64(b, c.v))
		require.Equal(t, 1, b.Unread())
		require.Equal(t, []byte{c.want}, b.Bytes())
	}

	bneg := mubuf.NewResizable(4)
	require.NoError(t, WriteVF128F64(bneg, math.Copysign(0, -1)))
	require.Equal(t, []byte{0x40}, bneg.Bytes())

	binf := mubuf.NewResizable(4)
	require.NoError(t, WriteVF128F64(binf, math.Inf(1)))
	require.Equal(t, []byte{0x30}, binf.Bytes())

	bnan := mubuf.NewResizable(4)
	require.NoError(t, WriteVF128F64(bnan, math.NaN()))
	require.Equal(t, []byte{0x38}, bnan.Bytes())
}

func TestVF128F64InlineSubnormalOneByte(t *testing.T) {
	b := mubuf.NewResizable(4)
	require.NoError(t, WriteVF128F64(b, 0.5))
	require.Equal(t, 1, b.Unread())
	got, err := ReadVF128F64(b)
	require.NoError(t, err)
	require.Equal(t, 0.5, got)
}

func TestVF128F64FiniteRoundTrip(t *testing.T) {
	values := []float64{
		1.0, -1.0, 2.0, -2.0, 0.5, -0.5, 4.0, 8.0, 0.25,
		3.14159265358979, 2.71828182845905, 1e10, -1e-10,
		12345.6789, 1.0 / 3.0, 1e300, 1e-300, 123456789.123456,
	}
	for _, v := range values {
		got, _ := roundTripVF128F64(t, v)
		require.Equal(t, v, got, "v=%v", v)
	}
}

func TestVF128F64Specials(t *testing.T) {
	got, _ := roundTripVF128F64(t, math.Inf(1))
	require.True(t, math.IsInf(got, 1))
	got, _ = roundTripVF128F64(t, math.Inf(-1))
	require.True(t, math.IsInf(got, -1))
	got, _ = roundTripVF128F64(t, math.NaN())
	require.True(t, math.IsNaN(got))

	z, _ := roundTripVF128F64(t, 0.0)
	require.Equal(t, 0.0, z)
	require.False(t, math.Signbit(z))

	nz, _ := roundTripVF128F64(t, math.Copysign(0, -1))
	require.Equal(t, 0.0, nz)
	require.True(t, math.Signbit(nz))
}

func TestVF128F64CompressedFormRoundTrip(t *testing.T) {
	values := []float64{0.1, -0.1, 0.2, 0.3, 0.001, 0.0001, 1.0 / 3.0, -1.0 / 128.0}
	for _, v := range values {
		got, _ := roundTripVF128F64(t, v)
		require.Equal(t, v, got, "v=%v", v)
	}
}

func TestVF128F64CompressedFormShrinksEncoding(t *testing.T) {
	// 0.1 has unbiased exponent -4, well inside the [-8,-1] range where
	// the fraction-only form can omit the exponent field entirely.
	explicit := mubuf.NewResizable(4)
	require.NoError(t, WriteVF128F64(explicit, 0.1))
	lead, _ := explicit.ReadI8()
	require.NotEqual(t, byte(0), byte(lead)&0x80, "0.1 must use the out-of-line form")
	require.Equal(t, byte(0), (byte(lead)>>4)&0x03, "writer must pick the EE=0 fraction-only form for 0.1")
}

func TestVF128F64SubnormalRoundTrip(t *testing.T) {
	values := []float64{
		math.Float64frombits(1),                // smallest positive subnormal
		math.Float64frombits(0x000FFFFFFFFFFFFF), // largest subnormal
		math.Float64frombits(3),
		math.Float64frombits(1 << 30),
	}
	for _, v := range values {
		got, _ := roundTripVF128F64(t, v)
		require.Equal(t, v, got, "bits=%x", math.Float64bits(v))
	}
}

func roundTripVF128F32(t *testing.T, v float32) float32 {
	t.Helper()
	b := mubuf.NewResizable(8)
	require.NoError(t, WriteVF128F32(b, v))
	got, err := ReadVF128F32(b)
	require.NoError(t, err)
	return got
}

func TestVF128F32SeedBytes(t *testing.T) {
	cases := []struct {
		v    float32
		want byte
	}{
		{1.0, 0x10},
		{-1.0, 0x50},
		{2.0, 0x20},
		{0.0, 0x00},
	}
	for _, c := range cases {
		b := mubuf.NewResizable(4)
		require.NoError(t, WriteVF128F32(b, c.v))
		require.Equal(t, []byte{c.want}, b.Bytes())
	}
}

func TestVF128F32FiniteRoundTrip(t *testing.T) {
	values := []float32{1.0, -1.0, 2.0, 0.5, 4.0, 3.14159, 12345.6789, -0.001, 1e30, 1e-30}
	for _, v := range values {
		got := roundTripVF128F32(t, v)
		require.Equal(t, v, got, "v=%v", v)
	}
}

func TestVF128F32Specials(t *testing.T) {
	require.True(t, math.IsInf(float64(roundTripVF128F32(t, float32(math.Inf(1)))), 1))
	require.True(t, math.IsInf(float64(roundTripVF128F32(t, float32(math.Inf(-1)))), -1))
	got := roundTripVF128F32(t, float32(math.NaN()))
	require.True(t, got != got)
}

func TestVF128F32CompressedFormRoundTrip(t *testing.T) {
	values := []float32{0.1, -0.1, 0.2, 0.001, 1.0 / 3.0}
	for _, v := range values {
		got := roundTripVF128F32(t, v)
		require.Equal(t, v, got, "v=%v", v)
	}
}

func TestVF128F32SubnormalRoundTrip(t *testing.T) {
	values := []float32{
		math.Float32frombits(1),
		math.Float32frombits(0x007FFFFF),
		math.Float32frombits(3),
	}
	for _, v := range values {
		got := roundTripVF128F32(t, v)
		require.Equal(t, v, got, "bits=%x", math.Float32bits(v))
	}
}
