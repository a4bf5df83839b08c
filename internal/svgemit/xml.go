// Package svgemit renders a parsed svg.Arena back out in each of the
// spec's output formats: well-formed XML, an indented text dump, and
// the binary wire format.
package svgemit

import (
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/svg"
)

// WriteXML re-emits arena as XML, walking the sibling-chain tree from
// its roots. Self-closing elements are used for childless nodes.
func WriteXML(b *mubuf.Buffer, arena *svg.Arena) error {
	return writeXMLGroup(b, arena, arena.FirstRoot())
}

func writeXMLGroup(b *mubuf.Buffer, arena *svg.Arena, first int) error {
	idx := first
	for idx != svg.NodeSentinel {
		n := &arena.Nodes[idx]
		if err := writeXMLNode(b, arena, idx, n); err != nil {
			return err
		}
		idx = n.Next
	}
	return nil
}

func writeXMLNode(b *mubuf.Buffer, arena *svg.Arena, idx int, n *svg.Node) error {
	name := svg.KindName(n.Kind)
	if b.WriteFormat("<%s", name) <= 0 {
		return mubuf.ErrOverflow
	}

	var attrErr error
	n.Attr.EachAttr(func(attr svg.Attr) {
		if attrErr != nil {
			return
		}
		value := attrValueText(arena, n, attr)
		if b.WriteFormat(" %s=\"%s\"", svg.AttrName(attr), escapeAttr(value)) <= 0 {
			attrErr = mubuf.ErrOverflow
		}
	})
	if attrErr != nil {
		return attrErr
	}

	child := arena.FirstChild(idx)
	if child == svg.NodeSentinel {
		if b.WriteString(" />") == 0 {
			return mubuf.ErrOverflow
		}
		return nil
	}

	if b.WriteString(">") == 0 {
		return mubuf.ErrOverflow
	}
	if err := writeXMLGroup(b, arena, child); err != nil {
		return err
	}
	if b.WriteFormat("</%s>", name) <= 0 {
		return mubuf.ErrOverflow
	}
	return nil
}
