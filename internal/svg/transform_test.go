package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMatrixClose(t *testing.T, want, got [6]float32) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestComputeMatrixTranslate(t *testing.T) {
	tr := Transform{Type: TransformTranslate, NArgs: 2, Args: [6]float32{3, 4}}
	ComputeMatrix(&tr)
	requireMatrixClose(t, [6]float32{1, 0, 0, 1, 3, 4}, tr.M)
}

func TestComputeMatrixScaleUniform(t *testing.T) {
	tr := Transform{Type: TransformScale, NArgs: 1, Args: [6]float32{2}}
	ComputeMatrix(&tr)
	requireMatrixClose(t, [6]float32{2, 0, 0, 2, 0, 0}, tr.M)
}

func TestComputeMatrixRotateAroundOrigin(t *testing.T) {
	tr := Transform{Type: TransformRotate, NArgs: 1, Args: [6]float32{90}}
	ComputeMatrix(&tr)
	requireMatrixClose(t, [6]float32{0, 1, -1, 0, 0, 0}, tr.M)
}

func TestComputeMatrixRotateAroundPoint(t *testing.T) {
	tr := Transform{Type: TransformRotate, NArgs: 3, Args: [6]float32{90, 10, 0}}
	ComputeMatrix(&tr)
	// rotating (10,0) by 90deg around itself leaves it fixed
	x := tr.M[0]*10 + tr.M[2]*0 + tr.M[4]
	y := tr.M[1]*10 + tr.M[3]*0 + tr.M[5]
	require.InDelta(t, 10.0, float64(x), 1e-3)
	require.InDelta(t, 0.0, float64(y), 1e-3)
}

func TestComputeMatrixMatrixLiteral(t *testing.T) {
	tr := Transform{Type: TransformMatrix, NArgs: 6, Args: [6]float32{1, 0, 0, 1, 5, 7}}
	ComputeMatrix(&tr)
	requireMatrixClose(t, [6]float32{1, 0, 0, 1, 5, 7}, tr.M)
}

func TestComputeMatrixMatrixLiteralTooFewArgsFallsBackIdentity(t *testing.T) {
	tr := Transform{Type: TransformMatrix, NArgs: 3, Args: [6]float32{1, 2, 3}}
	ComputeMatrix(&tr)
	requireMatrixClose(t, IdentityMatrix(), tr.M)
}

func TestComposeTransformsAppliesLeftToRight(t *testing.T) {
	ops := []Transform{
		{Type: TransformTranslate, NArgs: 2, Args: [6]float32{10, 0}},
		{Type: TransformScale, NArgs: 1, Args: [6]float32{2}},
	}
	m := ComposeTransforms(ops)
	// point (1,1): scale first then translate, per composed left-to-right
	// application order -> (2,2) + (10,0) = (12,2)
	x := m[0]*1 + m[2]*1 + m[4]
	y := m[1]*1 + m[3]*1 + m[5]
	require.InDelta(t, 12.0, float64(x), 1e-4)
	require.InDelta(t, 2.0, float64(y), 1e-4)
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	id := IdentityMatrix()
	m := [6]float32{2, 0, 0, 3, 1, 1}
	require.Equal(t, m, MatrixMultiply(m, id))
	require.Equal(t, m, MatrixMultiply(id, m))
}

func TestComputeMatrixSkewX(t *testing.T) {
	tr := Transform{Type: TransformSkewX, NArgs: 1, Args: [6]float32{45}}
	ComputeMatrix(&tr)
	require.InDelta(t, math.Tan(math.Pi/4), float64(tr.M[2]), 1e-4)
}
