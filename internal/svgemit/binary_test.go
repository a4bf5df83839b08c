package svgemit

import (
	"testing"

	"github.com/scigolib/musvg/internal/floatwire"
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/svg"
	"github.com/scigolib/musvg/internal/svgbinary"
	"github.com/scigolib/musvg/internal/svgxml"
	"github.com/stretchr/testify/require"
)

func seedArena(t *testing.T) *svg.Arena {
	t.Helper()
	src := `<svg viewBox="0 0 10 10"><rect x="1" y="2" width="3" height="4" stroke="#ff0000"/></svg>`
	arena, err := svgxml.Parse([]byte(src))
	require.NoError(t, err)
	return arena
}

func TestBinaryRoundTripVF128(t *testing.T) {
	arena := seedArena(t)
	b := mubuf.NewResizable(64)
	require.NoError(t, WriteDocument(b, arena, floatwire.VF128{}))

	got, err := svgbinary.ParseDocument(mubuf.NewBorrowed(b.Bytes()), floatwire.VF128{})
	require.NoError(t, err)
	require.Len(t, got.Nodes, 2)
	require.Equal(t, svg.KindSVG, got.Nodes[0].Kind)
	require.Equal(t, svg.Viewbox{X: 0, Y: 0, Width: 10, Height: 10}, got.Nodes[0].Viewbox)
	require.Equal(t, svg.KindRect, got.Nodes[1].Kind)
	require.Equal(t, float32(1), got.Nodes[1].RectX.Value)
	require.Equal(t, float32(4), got.Nodes[1].RectHeight.Value)
	require.Equal(t, uint32(0xff0000), got.Nodes[1].Attr.StrokeColor.RGB)
}

func TestBinaryRoundTripIEEE(t *testing.T) {
	arena := seedArena(t)
	b := mubuf.NewResizable(64)
	require.NoError(t, WriteDocument(b, arena, floatwire.IEEE{}))

	got, err := svgbinary.ParseDocument(mubuf.NewBorrowed(b.Bytes()), floatwire.IEEE{})
	require.NoError(t, err)
	require.Equal(t, float32(3), got.Nodes[1].RectWidth.Value)
}

func TestBinaryEmptyDocument(t *testing.T) {
	arena := svg.NewArena()
	b := mubuf.NewResizable(8)
	require.NoError(t, WriteDocument(b, arena, floatwire.VF128{}))
	require.Equal(t, []byte{0x00}, b.Bytes())

	got, err := svgbinary.ParseDocument(mubuf.NewBorrowed(b.Bytes()), floatwire.VF128{})
	require.NoError(t, err)
	require.Len(t, got.Nodes, 0)
}
