package svgxml

import (
	"testing"

	"github.com/scigolib/musvg/internal/svg"
	"github.com/stretchr/testify/require"
)

func TestParseSeedScenario(t *testing.T) {
	src := `<svg viewBox="0 0 10 10"><rect x="1" y="2" width="3" height="4"/></svg>`
	arena, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, arena.Nodes, 2)

	root := arena.Nodes[0]
	require.Equal(t, svg.KindSVG, root.Kind)
	require.True(t, root.HasViewbox)
	require.Equal(t, svg.Viewbox{X: 0, Y: 0, Width: 10, Height: 10}, root.Viewbox)
	require.True(t, root.Attr.HasAttr(svg.AttrSVGViewbox))

	rect := arena.Nodes[1]
	require.Equal(t, svg.KindRect, rect.Kind)
	require.Equal(t, root.Next, -1)
	require.Equal(t, 0, rect.Parent)
	require.Equal(t, svg.Length{Value: 1, Unit: svg.UnitUser}, rect.RectX)
	require.Equal(t, svg.Length{Value: 2, Unit: svg.UnitUser}, rect.RectY)
	require.Equal(t, svg.Length{Value: 3, Unit: svg.UnitUser}, rect.RectWidth)
	require.Equal(t, svg.Length{Value: 4, Unit: svg.UnitUser}, rect.RectHeight)
	for _, a := range []svg.Attr{svg.AttrRectX, svg.AttrRectY, svg.AttrRectWidth, svg.AttrRectHeight} {
		require.True(t, rect.Attr.HasAttr(a))
	}
}

func TestParseTransformCollapsesToMatrix(t *testing.T) {
	src := `<g transform="translate(3,4) rotate(30)"/>`
	arena, err := Parse([]byte(src))
	require.NoError(t, err)
	n := arena.Nodes[0]
	require.Equal(t, svg.TransformMatrix, n.Attr.Xform.Type)
}

func TestParseSingleTransformPreservesType(t *testing.T) {
	src := `<g transform="translate(3,4)"/>`
	arena, err := Parse([]byte(src))
	require.NoError(t, err)
	n := arena.Nodes[0]
	require.Equal(t, svg.TransformTranslate, n.Attr.Xform.Type)
	require.Equal(t, 2, n.Attr.Xform.NArgs)
	require.Equal(t, float32(3), n.Attr.Xform.Args[0])
	require.Equal(t, float32(4), n.Attr.Xform.Args[1])
}

func TestParsePathAttribute(t *testing.T) {
	src := `<path d="M 0 0 L 1 1 Z"/>`
	arena, err := Parse([]byte(src))
	require.NoError(t, err)
	n := arena.Nodes[0]
	require.Equal(t, 3, n.OpCount)
	ops := arena.PathOps[n.OpOffset : n.OpOffset+n.OpCount]
	require.Equal(t, svg.PathMovetoAbs, ops[0].Code)
	require.Equal(t, svg.PathLinetoAbs, ops[1].Code)
	require.Equal(t, svg.PathClosepath, ops[2].Code)
}

func TestParseUnknownElementSkipsSubtree(t *testing.T) {
	src := `<svg><foo><bar/></foo><rect x="1" y="2"/></svg>`
	arena, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, arena.Nodes, 2) // svg + rect only
	require.Equal(t, svg.KindRect, arena.Nodes[1].Kind)
}

func TestParseGenericStrokeAttrs(t *testing.T) {
	src := `<rect stroke="#ff0000" stroke-width="2" stroke-linecap="round"/>`
	arena, err := Parse([]byte(src))
	require.NoError(t, err)
	n := arena.Nodes[0]
	require.Equal(t, uint32(0xff0000), n.Attr.StrokeColor.RGB)
	require.Equal(t, float32(2), n.Attr.StrokeWidth.Value)
	require.Equal(t, svg.LinecapRound, n.Attr.StrokeLinecap)
}
