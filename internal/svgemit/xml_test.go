package svgemit

import (
	"testing"

	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/svgxml"
	"github.com/stretchr/testify/require"
)

func TestWriteXMLRoundTrip(t *testing.T) {
	arena := seedArena(t)
	b := mubuf.NewResizable(256)
	require.NoError(t, WriteXML(b, arena))

	out := string(b.Bytes())
	require.Contains(t, out, `<svg viewBox="0 0 10 10">`)
	require.Contains(t, out, `x="1"`)
	require.Contains(t, out, `stroke="#ff0000"`)
	require.Contains(t, out, "</svg>")

	reparsed, err := svgxml.Parse(b.Bytes())
	require.NoError(t, err)
	require.Len(t, reparsed.Nodes, 2)
}

func TestWriteXMLSelfClosingNoChildren(t *testing.T) {
	arena := seedArena(t)
	b := mubuf.NewResizable(256)
	require.NoError(t, WriteXML(b, arena))
	require.Contains(t, string(b.Bytes()), `<rect`)
	require.Contains(t, string(b.Bytes()), `/>`)
}
