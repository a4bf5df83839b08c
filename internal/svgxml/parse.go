package svgxml

import (
	"github.com/scigolib/musvg/internal/muerr"
	"github.com/scigolib/musvg/internal/svg"
)

// Parse tokenizes data and builds an Arena from the recognized element
// stream. data is only read; its contents are left unchanged.
//
// Unrecognized element names are skipped along with their entire
// subtree (their attributes and children are never visited); this
// matches the original's behavior of simply not registering a begin
// parser for elements outside the supported set.
func Parse(data []byte) (*svg.Arena, error) {
	tok := NewTokenizer(data)
	arena := svg.NewArena()
	skipDepth := 0

	for {
		ev, ok, err := tok.Next()
		if err != nil {
			return nil, muerr.Wrap("svgxml: parse", err)
		}
		if !ok {
			break
		}

		switch ev.Kind {
		case svgStart:
			if skipDepth > 0 {
				skipDepth++
				continue
			}
			kind, ok := svg.KindByName(ev.Name)
			if !ok {
				skipDepth = 1
				continue
			}
			idx := arena.BeginNode(kind)
			if err := applyAttrs(arena, idx, kind, ev.Attrs); err != nil {
				return nil, muerr.Wrap("svgxml: parse <"+ev.Name+">", err)
			}
		case svgSelfClosing:
			if skipDepth > 0 {
				continue
			}
			kind, ok := svg.KindByName(ev.Name)
			if !ok {
				continue
			}
			idx := arena.BeginNode(kind)
			if err := applyAttrs(arena, idx, kind, ev.Attrs); err != nil {
				return nil, muerr.Wrap("svgxml: parse <"+ev.Name+"/>", err)
			}
			arena.EndNode()
		case svgEnd:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			arena.EndNode()
		default:
			// content, comment, PI: no-op, not part of the arena model.
		}
	}
	return arena, nil
}

// aliases so parse.go reads close to the EventKind names without a
// package-qualified prefix at every switch case.
const (
	svgStart       = EventStart
	svgEnd         = EventEnd
	svgSelfClosing = EventSelfClosing
)

func applyAttrs(arena *svg.Arena, idx int, kind svg.Kind, attrs []Attr) error {
	node := &arena.Nodes[idx]
	for _, at := range attrs {
		attr, ok := resolveAttr(kind, at.Name)
		if !ok {
			continue
		}
		if err := applyAttr(arena, node, attr, at.Value); err != nil {
			return err
		}
	}
	return nil
}
