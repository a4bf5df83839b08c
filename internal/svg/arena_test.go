package svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaSiblingChain(t *testing.T) {
	a := NewArena()
	root := a.BeginNode(KindSVG)
	g := a.BeginNode(KindG)
	a.EndNode() // close g
	rect := a.BeginNode(KindRect)
	a.EndNode() // close rect
	a.EndNode() // close svg

	require.Equal(t, NodeSentinel, a.Nodes[root].Parent)
	require.Equal(t, root, a.Nodes[g].Parent)
	require.Equal(t, root, a.Nodes[rect].Parent)
	require.Equal(t, rect, a.Nodes[g].Next)
	require.Equal(t, NodeSentinel, a.Nodes[rect].Next)
	require.Equal(t, g, a.FirstChild(root))
}

func TestArenaMultipleRoots(t *testing.T) {
	a := NewArena()
	r1 := a.BeginNode(KindSVG)
	a.EndNode()
	r2 := a.BeginNode(KindSVG)
	a.EndNode()

	roots := a.Roots()
	require.Equal(t, []int{r1, r2}, roots)
	require.Equal(t, r1, a.FirstRoot())
}

func TestArenaAppendPointsGrows(t *testing.T) {
	a := NewArena()
	offset, count := a.AppendPoints([]Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.Equal(t, 0, offset)
	require.Equal(t, 2, count)

	offset2, count2 := a.AppendPoints([]Point{{X: 5, Y: 6}})
	require.Equal(t, 2, offset2)
	require.Equal(t, 1, count2)
	require.Len(t, a.Points, 3)
	require.Equal(t, float32(5), a.Points[2].X)
}

func TestArenaAppendPathOpsGrows(t *testing.T) {
	a := NewArena()
	ops := make([]PathOp, 20)
	offset, count := a.AppendPathOps(ops)
	require.Equal(t, 0, offset)
	require.Equal(t, 20, count)
	require.GreaterOrEqual(t, cap(a.PathOps), 20)
}

func TestArenaEndNodeOnEmptyStackNoop(t *testing.T) {
	a := NewArena()
	a.EndNode()
	require.Equal(t, NodeSentinel, a.Top())
}
