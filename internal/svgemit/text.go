package svgemit

import (
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/svg"
)

// WriteText renders arena as an indented debug dump: one line per
// element, attributes on their own indented lines below it, children
// indented one level deeper.
func WriteText(b *mubuf.Buffer, arena *svg.Arena) error {
	return writeTextGroup(b, arena, arena.FirstRoot(), 0)
}

func writeTextGroup(b *mubuf.Buffer, arena *svg.Arena, first int, depth int) error {
	idx := first
	for idx != svg.NodeSentinel {
		n := &arena.Nodes[idx]
		if err := writeTextNode(b, arena, idx, n, depth); err != nil {
			return err
		}
		idx = n.Next
	}
	return nil
}

func writeTextNode(b *mubuf.Buffer, arena *svg.Arena, idx int, n *svg.Node, depth int) error {
	if err := writeIndent(b, depth); err != nil {
		return err
	}
	if b.WriteFormat("%s\n", svg.KindName(n.Kind)) <= 0 {
		return mubuf.ErrOverflow
	}

	var attrErr error
	n.Attr.EachAttr(func(attr svg.Attr) {
		if attrErr != nil {
			return
		}
		if err := writeIndent(b, depth+1); err != nil {
			attrErr = err
			return
		}
		value := attrValueText(arena, n, attr)
		if b.WriteFormat("%s = %s\n", svg.AttrName(attr), value) <= 0 {
			attrErr = mubuf.ErrOverflow
		}
	})
	if attrErr != nil {
		return attrErr
	}

	return writeTextGroup(b, arena, arena.FirstChild(idx), depth+1)
}

func writeIndent(b *mubuf.Buffer, depth int) error {
	for i := 0; i < depth; i++ {
		if b.WriteString("  ") == 0 {
			return mubuf.ErrOverflow
		}
	}
	return nil
}
