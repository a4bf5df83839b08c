package svgbinary

import (
	"testing"

	"github.com/scigolib/musvg/internal/floatwire"
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/svg"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentEmpty(t *testing.T) {
	b := mubuf.NewBorrowed([]byte{0x00})
	arena, err := ParseDocument(b, floatwire.VF128{})
	require.NoError(t, err)
	require.Len(t, arena.Nodes, 0)
}

func TestParseDocumentOutOfRangeElementByteNormalizes(t *testing.T) {
	// an element byte beyond KindLimit is taken modulo KindLimit+1 rather
	// than indexing out of range.
	raw := []byte{byte(svg.KindLimit() + 2), 0x00, 0x00, 0x00}
	want := svg.Kind((svg.KindLimit() + 2) % (svg.KindLimit() + 1))
	arena, err := ParseDocument(mubuf.NewBorrowed(raw), floatwire.VF128{})
	require.NoError(t, err)
	require.Len(t, arena.Nodes, 1)
	require.Equal(t, want, arena.Nodes[0].Kind)
}

func TestParseDocumentTruncatedStreamErrors(t *testing.T) {
	raw := []byte{byte(svg.KindSVG)} // no attr terminator, no group terminator
	_, err := ParseDocument(mubuf.NewBorrowed(raw), floatwire.VF128{})
	require.Error(t, err)
}
