package svg

import "github.com/scigolib/musvg/internal/ioutil"

// Arena owns every node, path-op, and point produced by a single parse.
// It exclusively owns this storage; parsers hold a mutable borrow for
// the duration of the parse call and emitters a read-only one.
type Arena struct {
	Nodes   []Node
	PathOps []PathOp
	Points  []Point

	stack []int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{stack: make([]int, 0, 16)}
}

func growPow2[T any](s []T, need int) []T {
	if cap(s)-len(s) >= need {
		return s
	}
	newCap := ioutil.NextPow2(uint64(len(s) + need))
	grown := make([]T, len(s), newCap)
	copy(grown, s)
	return grown
}

// BeginNode appends a new zero-initialized node of kind k, wires its
// parent to the current top of the node stack, chains it onto the Next
// link of that parent's previous last child, and pushes it as the new top
// (spec §4.6's element start hook).
func (a *Arena) BeginNode(k Kind) int {
	parent := NodeSentinel
	if len(a.stack) > 0 {
		parent = a.stack[len(a.stack)-1]
	}

	a.Nodes = growPow2(a.Nodes, 1)
	idx := len(a.Nodes)
	a.Nodes = append(a.Nodes, Node{Kind: k, Next: NodeSentinel, Parent: parent})

	a.chainSibling(parent, idx)
	a.stack = append(a.stack, idx)
	return idx
}

// chainSibling finds the last existing child of parent (scanning the
// sibling chain, since nodes don't carry a "last child" pointer) and
// sets its Next to idx; if parent has no children yet, nothing to do
// beyond idx's own Next, which BeginNode already set to NodeSentinel.
func (a *Arena) chainSibling(parent, idx int) {
	last := NodeSentinel
	for i := 0; i < idx; i++ {
		if a.Nodes[i].Parent == parent && a.Nodes[i].Next == NodeSentinel {
			last = i
		}
	}
	if last != NodeSentinel {
		a.Nodes[last].Next = idx
	}
}

// EndNode pops the node stack (spec §4.6's element end hook).
func (a *Arena) EndNode() {
	if len(a.stack) > 0 {
		a.stack = a.stack[:len(a.stack)-1]
	}
}

// Top returns the index of the innermost open node, or NodeSentinel if
// the stack is empty.
func (a *Arena) Top() int {
	if len(a.stack) == 0 {
		return NodeSentinel
	}
	return a.stack[len(a.stack)-1]
}

// AppendPoints appends pts to the shared point pool and returns the
// (offset, count) slice descriptor to store on the owning node.
func (a *Arena) AppendPoints(pts []Point) (offset, count int) {
	a.Points = growPow2(a.Points, len(pts))
	offset = len(a.Points)
	a.Points = append(a.Points, pts...)
	return offset, len(pts)
}

// AppendPathOps appends ops to the shared path-op pool and returns the
// (offset, count) slice descriptor to store on the owning path node.
func (a *Arena) AppendPathOps(ops []PathOp) (offset, count int) {
	a.PathOps = growPow2(a.PathOps, len(ops))
	offset = len(a.PathOps)
	a.PathOps = append(a.PathOps, ops...)
	return offset, len(ops)
}

// Roots returns the indices of every node with no parent, in document
// order.
func (a *Arena) Roots() []int {
	var roots []int
	for i := range a.Nodes {
		if a.Nodes[i].Parent == NodeSentinel {
			roots = append(roots, i)
		}
	}
	return roots
}

// FirstRoot returns the first root node's index, or NodeSentinel if the
// arena is empty.
func (a *Arena) FirstRoot() int {
	for i := range a.Nodes {
		if a.Nodes[i].Parent == NodeSentinel {
			return i
		}
	}
	return NodeSentinel
}

// FirstChild returns the index of parent's first child (the lowest
// index whose Parent is idx), or NodeSentinel.
func (a *Arena) FirstChild(idx int) int {
	for i := range a.Nodes {
		if a.Nodes[i].Parent == idx {
			return i
		}
	}
	return NodeSentinel
}
