package svgemit

import (
	"github.com/scigolib/musvg/internal/floatwire"
	"github.com/scigolib/musvg/internal/intcodec"
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/muerr"
	"github.com/scigolib/musvg/internal/svg"
)

// WriteDocument emits arena's full node tree to b in the binary wire
// format (spec §6): a recursive element_byte/attr_byte stream, each
// group (siblings at one tree depth) terminated by a 0x00 byte. codec
// selects vf128 ("svgv") or raw IEEE-754 ("svgb") for every float field.
func WriteDocument(b *mubuf.Buffer, arena *svg.Arena, codec floatwire.Codec) error {
	return writeGroup(b, arena, arena.FirstRoot(), codec)
}

func writeGroup(b *mubuf.Buffer, arena *svg.Arena, first int, codec floatwire.Codec) error {
	idx := first
	for idx != svg.NodeSentinel {
		n := &arena.Nodes[idx]
		if err := writeByte(b, byte(n.Kind)); err != nil {
			return muerr.Wrap("svgemit: binary element byte", err)
		}
		if err := writeAttrs(b, arena, n, codec); err != nil {
			return err
		}
		if err := writeByte(b, 0); err != nil {
			return muerr.Wrap("svgemit: binary attr terminator", err)
		}
		if err := writeGroup(b, arena, arena.FirstChild(idx), codec); err != nil {
			return err
		}
		idx = n.Next
	}
	if err := writeByte(b, 0); err != nil {
		return muerr.Wrap("svgemit: binary group terminator", err)
	}
	return nil
}

func writeByte(b *mubuf.Buffer, v byte) error {
	if b.WriteByte(v) != 1 {
		return mubuf.ErrOverflow
	}
	return nil
}

func writeAttrs(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, codec floatwire.Codec) error {
	var outerErr error
	n.Attr.EachAttr(func(attr svg.Attr) {
		if outerErr != nil {
			return
		}
		if err := writeByte(b, byte(attr)); err != nil {
			outerErr = err
			return
		}
		if err := writeAttrPayload(b, arena, n, attr, codec); err != nil {
			outerErr = muerr.Wrap("svgemit: binary attr "+svg.AttrName(attr), err)
		}
	})
	return outerErr
}

func writeAttrPayload(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, attr svg.Attr, codec floatwire.Codec) error {
	switch svg.AttrType(attr) {
	case svg.TypePath:
		return writePath(b, arena, n, codec)
	case svg.TypePoints:
		return writePoints(b, arena, n, codec)
	case svg.TypeID:
		acc, _ := svg.Lookup(attr)
		return writeID(b, acc.GetID(n))
	case svg.TypeEnum:
		acc, _ := svg.Lookup(attr)
		return writeEnum(b, attr, acc.GetEnum(n))
	case svg.TypeLength:
		acc, _ := svg.Lookup(attr)
		return writeLength(b, acc.GetLength(n), codec)
	case svg.TypeColor:
		acc, _ := svg.Lookup(attr)
		return writeColor(b, acc.GetColor(n))
	case svg.TypeFloat:
		acc, _ := svg.Lookup(attr)
		return codec.WriteF32(b, acc.GetFloat(n))
	case svg.TypeTransform:
		acc, _ := svg.Lookup(attr)
		return writeTransform(b, acc.GetTransform(n), codec)
	case svg.TypeDasharray:
		acc, _ := svg.Lookup(attr)
		return writeDasharray(b, acc.GetDasharray(n), codec)
	case svg.TypeViewbox:
		acc, _ := svg.Lookup(attr)
		return writeViewbox(b, acc.GetViewbox(n), codec)
	case svg.TypeAspectratio:
		acc, _ := svg.Lookup(attr)
		return writeAspectratio(b, acc.GetAspect(n))
	}
	return nil
}

func writeEnum(b *mubuf.Buffer, attr svg.Attr, v uint8) error {
	limit := enumLimit(attr)
	return writeByte(b, v%byte(limit+1))
}

func enumLimit(attr svg.Attr) int {
	switch attr {
	case svg.AttrDisplay:
		return svg.DisplayLimit()
	case svg.AttrFillRule:
		return svg.FillruleLimit()
	case svg.AttrStrokeLinecap:
		return svg.LinecapLimit()
	case svg.AttrStrokeLinejoin:
		return svg.LinejoinLimit()
	case svg.AttrGradientUnits:
		return svg.GradUnitLimit()
	case svg.AttrGradientSpread:
		return svg.SpreadLimit()
	default:
		return 255
	}
}

func writeID(b *mubuf.Buffer, s string) error {
	if err := intcodec.WriteVLU(b, uint64(len(s))); err != nil {
		return err
	}
	if b.WriteBytes([]byte(s)) != len(s) {
		return mubuf.ErrOverflow
	}
	return nil
}

func writeLength(b *mubuf.Buffer, l svg.Length, codec floatwire.Codec) error {
	if err := writeByte(b, byte(l.Unit)%byte(svg.UnitLimit()+1)); err != nil {
		return err
	}
	return codec.WriteF32(b, l.Value)
}

func writeColor(b *mubuf.Buffer, c svg.Color) error {
	flag := byte(0)
	if c.Present {
		flag = 1
	}
	if err := writeByte(b, flag); err != nil {
		return err
	}
	if !c.Present {
		return nil
	}
	if b.WriteByte(byte(c.RGB>>16)) != 1 || b.WriteByte(byte(c.RGB>>8)) != 1 || b.WriteByte(byte(c.RGB)) != 1 {
		return mubuf.ErrOverflow
	}
	return nil
}

func writeTransform(b *mubuf.Buffer, t svg.Transform, codec floatwire.Codec) error {
	if err := writeByte(b, byte(t.Type)%byte(svg.TransformTypeLimit()+1)); err != nil {
		return err
	}
	if t.Type == svg.TransformMatrix {
		for _, v := range t.M {
			if err := codec.WriteF32(b, v); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeByte(b, byte(t.NArgs)); err != nil {
		return err
	}
	for i := 0; i < t.NArgs; i++ {
		if err := codec.WriteF32(b, t.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeDasharray(b *mubuf.Buffer, d svg.Dasharray, codec floatwire.Codec) error {
	if err := writeByte(b, byte(d.Count)); err != nil {
		return err
	}
	for i := 0; i < d.Count; i++ {
		if err := codec.WriteF32(b, d.Dashes[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeViewbox(b *mubuf.Buffer, v svg.Viewbox, codec floatwire.Codec) error {
	for _, f := range []float32{v.X, v.Y, v.Width, v.Height} {
		if err := codec.WriteF32(b, f); err != nil {
			return err
		}
	}
	return nil
}

func writeAspectratio(b *mubuf.Buffer, a svg.Aspectratio) error {
	if err := writeByte(b, byte(a.AlignX)%byte(svg.AlignLimit()+1)); err != nil {
		return err
	}
	if err := writeByte(b, byte(a.AlignY)%byte(svg.AlignLimit()+1)); err != nil {
		return err
	}
	return writeByte(b, byte(a.AlignType)%byte(svg.CropLimit()+1))
}

func writePath(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, codec floatwire.Codec) error {
	ops := arena.PathOps[n.OpOffset : n.OpOffset+n.OpCount]
	if err := intcodec.WriteVLU(b, uint64(len(ops))); err != nil {
		return err
	}
	for _, op := range ops {
		if err := writeByte(b, byte(op.Code)); err != nil {
			return err
		}
		if err := intcodec.WriteVLU(b, uint64(op.PointCount)); err != nil {
			return err
		}
		for i := 0; i < op.PointCount; i++ {
			pt := arena.Points[op.PointOffset+i/2]
			var v float32
			if i%2 == 0 {
				v = pt.X
			} else {
				v = pt.Y
			}
			if err := codec.WriteF32(b, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePoints(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, codec floatwire.Codec) error {
	pts := arena.Points[n.PointOffset : n.PointOffset+n.PointCount]
	if err := intcodec.WriteVLU(b, uint64(len(pts))); err != nil {
		return err
	}
	for _, pt := range pts {
		if err := codec.WriteF32(b, pt.X); err != nil {
			return err
		}
		if err := codec.WriteF32(b, pt.Y); err != nil {
			return err
		}
	}
	return nil
}
