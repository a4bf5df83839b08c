package svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePathDataSimple(t *testing.T) {
	ops, points, err := ParsePathData("M10 20L30 40Z")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	require.Equal(t, PathMovetoAbs, ops[0].Code)
	require.Equal(t, PathLinetoAbs, ops[1].Code)
	require.Equal(t, PathClosepath, ops[2].Code)
	require.Equal(t, Point{X: 10, Y: 20}, points[ops[0].PointOffset])
	require.Equal(t, Point{X: 30, Y: 40}, points[ops[1].PointOffset])
}

func TestParsePathDataImplicitLineAfterMoveto(t *testing.T) {
	ops, points, err := ParsePathData("M0 0 10 10 20 20")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	require.Equal(t, PathMovetoAbs, ops[0].Code)
	require.Equal(t, PathLinetoAbs, ops[1].Code)
	require.Equal(t, PathLinetoAbs, ops[2].Code)
	require.Equal(t, Point{X: 10, Y: 10}, points[ops[1].PointOffset])
	require.Equal(t, Point{X: 20, Y: 20}, points[ops[2].PointOffset])
}

func TestParsePathDataRepeatedCommand(t *testing.T) {
	ops, _, err := ParsePathData("L1 1 2 2 3 3")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	for _, op := range ops {
		require.Equal(t, PathLinetoAbs, op.Code)
	}
}

func TestParsePathDataCommasAndNegatives(t *testing.T) {
	ops, points, err := ParsePathData("M-1.5,-2.5 L-3,-4")
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, Point{X: -1.5, Y: -2.5}, points[ops[0].PointOffset])
	require.Equal(t, Point{X: -3, Y: -4}, points[ops[1].PointOffset])
}

func TestParsePathDataHorizontalVertical(t *testing.T) {
	ops, points, err := ParsePathData("M0 0H5V10")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	require.Equal(t, PathLineToHorizontalAbs, ops[1].Code)
	require.Equal(t, float32(5), points[ops[1].PointOffset].X)
	require.Equal(t, PathLineToVerticalAbs, ops[2].Code)
	require.Equal(t, float32(10), points[ops[2].PointOffset].X)
}

func TestParsePathDataArc(t *testing.T) {
	ops, _, err := ParsePathData("M0 0A5 5 0 1 0 10 10")
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, PathEllipticalArcAbs, ops[1].Code)
	require.Equal(t, 7, ops[1].PointCount)
}

func TestParsePathDataMissingArgIsError(t *testing.T) {
	_, _, err := ParsePathData("M0")
	require.Error(t, err)
}

func TestFormatPathDataRoundTrip(t *testing.T) {
	ops, points, err := ParsePathData("M1 2L3 4Z")
	require.NoError(t, err)
	got := FormatPathData(ops, points)
	require.Equal(t, "M1 2L3 4Z", got)
}
