// Package svgbinary parses the binary wire format (spec §6) back into an
// svg.Arena: the exact inverse of internal/svgemit's binary writer.
package svgbinary

import (
	"github.com/scigolib/musvg/internal/floatwire"
	"github.com/scigolib/musvg/internal/intcodec"
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/muerr"
	"github.com/scigolib/musvg/internal/svg"
)

// ParseDocument reads a binary wire stream from b into a freshly built
// Arena. codec must match whatever wrote the stream (vf128 for "svgv",
// raw IEEE-754 for "svgb").
func ParseDocument(b *mubuf.Buffer, codec floatwire.Codec) (*svg.Arena, error) {
	arena := svg.NewArena()
	if err := parseGroup(b, arena, codec); err != nil {
		return nil, err
	}
	return arena, nil
}

func parseGroup(b *mubuf.Buffer, arena *svg.Arena, codec floatwire.Codec) error {
	for {
		kb, err := readByte(b)
		if err != nil {
			return muerr.Wrap("svgbinary: element byte", err)
		}
		if kb == 0 {
			return nil
		}
		kind := svg.Kind(int(kb) % (svg.KindLimit() + 1))
		idx := arena.BeginNode(kind)
		if err := parseAttrs(b, arena, &arena.Nodes[idx], codec); err != nil {
			return err
		}
		if err := parseGroup(b, arena, codec); err != nil {
			return err
		}
		arena.EndNode()
	}
}

func readByte(b *mubuf.Buffer) (byte, error) {
	v, n := b.ReadByte()
	if n != 1 {
		return 0, mubuf.ErrUnderflow
	}
	return v, nil
}

func parseAttrs(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, codec floatwire.Codec) error {
	for {
		ab, err := readByte(b)
		if err != nil {
			return muerr.Wrap("svgbinary: attr byte", err)
		}
		if ab == 0 {
			return nil
		}
		attr := svg.Attr(int(ab) % (svg.AttrLimit() + 1))
		if err := parseAttrPayload(b, arena, n, attr, codec); err != nil {
			return muerr.Wrap("svgbinary: attr "+svg.AttrName(attr), err)
		}
		n.Attr.SetAttr(attr)
	}
}

func parseAttrPayload(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, attr svg.Attr, codec floatwire.Codec) error {
	switch svg.AttrType(attr) {
	case svg.TypePath:
		return parsePath(b, arena, n, codec)
	case svg.TypePoints:
		return parsePoints(b, arena, n, codec)
	case svg.TypeID:
		s, err := parseID(b)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetID(n, s)
		return nil
	case svg.TypeEnum:
		v, err := parseEnum(b, attr)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetEnum(n, v)
		return nil
	case svg.TypeLength:
		l, err := parseLength(b, codec)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetLength(n, l)
		return nil
	case svg.TypeColor:
		c, err := parseColor(b)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetColor(n, c)
		return nil
	case svg.TypeFloat:
		f, err := codec.ReadF32(b)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetFloat(n, f)
		return nil
	case svg.TypeTransform:
		t, err := parseTransform(b, codec)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetTransform(n, t)
		return nil
	case svg.TypeDasharray:
		d, err := parseDasharray(b, codec)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetDasharray(n, d)
		return nil
	case svg.TypeViewbox:
		v, err := parseViewbox(b, codec)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetViewbox(n, v)
		return nil
	case svg.TypeAspectratio:
		a, err := parseAspectratio(b)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetAspect(n, a)
		return nil
	}
	return nil
}

func parseEnum(b *mubuf.Buffer, attr svg.Attr) (uint8, error) {
	v, err := readByte(b)
	if err != nil {
		return 0, err
	}
	limit := enumLimit(attr)
	return v % byte(limit+1), nil
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

func parseID(b *mubuf.Buffer) (string, error) {
	n, err := intcodec.ReadVLU(b)
	if err != nil {
		return "", err
	}
	raw := b.ReadN(int(n))
	if raw == nil && n != 0 {
		return "", mubuf.ErrUnderflow
	}
	return string(raw), nil
}

func parseLength(b *mubuf.Buffer, codec floatwire.Codec) (svg.Length, error) {
	u, err := readByte(b)
	if err != nil {
		return svg.Length{}, err
	}
	v, err := codec.ReadF32(b)
	if err != nil {
		return svg.Length{}, err
	}
	return svg.Length{Value: v, Unit: svg.UnitType(u % byte(svg.UnitLimit()+1))}, nil
}

func parseColor(b *mubuf.Buffer) (svg.Color, error) {
	flag, err := readByte(b)
	if err != nil {
		return svg.Color{}, err
	}
	if flag == 0 {
		return svg.Color{}, nil
	}
	raw := b.ReadN(3)
	if raw == nil {
		return svg.Color{}, mubuf.ErrUnderflow
	}
	rgb := uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])
	return svg.Color{RGB: rgb, Present: true}, nil
}

func parseTransform(b *mubuf.Buffer, codec floatwire.Codec) (svg.Transform, error) {
	tb, err := readByte(b)
	if err != nil {
		return svg.Transform{}, err
	}
	t := svg.Transform{Type: svg.TransformType(int(tb) % (svg.TransformTypeLimit() + 1))}
	if t.Type == svg.TransformMatrix {
		for i := range t.M {
			v, err := codec.ReadF32(b)
			if err != nil {
				return svg.Transform{}, err
			}
			t.M[i] = v
		}
		t.NArgs = 6
		t.Args = t.M
		return t, nil
	}
	nargsB, err := readByte(b)
	if err != nil {
		return svg.Transform{}, err
	}
	t.NArgs = int(nargsB)
	for i := 0; i < t.NArgs && i < len(t.Args); i++ {
		v, err := codec.ReadF32(b)
		if err != nil {
			return svg.Transform{}, err
		}
		t.Args[i] = v
	}
	return t, nil
}

func parseDasharray(b *mubuf.Buffer, codec floatwire.Codec) (svg.Dasharray, error) {
	cb, err := readByte(b)
	if err != nil {
		return svg.Dasharray{}, err
	}
	var d svg.Dasharray
	d.Count = int(cb)
	for i := 0; i < d.Count && i < len(d.Dashes); i++ {
		v, err := codec.ReadF32(b)
		if err != nil {
			return svg.Dasharray{}, err
		}
		d.Dashes[i] = v
	}
	return d, nil
}

func parseViewbox(b *mubuf.Buffer, codec floatwire.Codec) (svg.Viewbox, error) {
	var v svg.Viewbox
	fields := []*float32{&v.X, &v.Y, &v.Width, &v.Height}
	for _, f := range fields {
		val, err := codec.ReadF32(b)
		if err != nil {
			return svg.Viewbox{}, err
		}
		*f = val
	}
	return v, nil
}

func parseAspectratio(b *mubuf.Buffer) (svg.Aspectratio, error) {
	ax, err := readByte(b)
	if err != nil {
		return svg.Aspectratio{}, err
	}
	ay, err := readByte(b)
	if err != nil {
		return svg.Aspectratio{}, err
	}
	ct, err := readByte(b)
	if err != nil {
		return svg.Aspectratio{}, err
	}
	return svg.Aspectratio{
		AlignX:    svg.AlignType(ax % byte(svg.AlignLimit()+1)),
		AlignY:    svg.AlignType(ay % byte(svg.AlignLimit()+1)),
		AlignType: svg.CropType(ct % byte(svg.CropLimit()+1)),
	}, nil
}

func parsePath(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, codec floatwire.Codec) error {
	count, err := intcodec.ReadVLU(b)
	if err != nil {
		return err
	}
	ops := make([]svg.PathOp, 0, count)
	for i := uint64(0); i < count; i++ {
		codeB, err := readByte(b)
		if err != nil {
			return err
		}
		nargs, err := intcodec.ReadVLU(b)
		if err != nil {
			return err
		}
		opPts := make([]svg.Point, 0, (nargs+1)/2)
		var cur svg.Point
		for j := uint64(0); j < nargs; j++ {
			v, err := codec.ReadF32(b)
			if err != nil {
				return err
			}
			if j%2 == 0 {
				cur = svg.Point{X: v}
			} else {
				cur.Y = v
				opPts = append(opPts, cur)
			}
		}
		if nargs%2 == 1 {
			opPts = append(opPts, cur)
		}
		offset, _ := arena.AppendPoints(opPts)
		ops = append(ops, svg.PathOp{
			Code:        svg.PathOpcode(int(codeB) % (svg.PathOpcodeLimit() + 1)),
			PointOffset: offset,
			PointCount:  int(nargs),
		})
	}
	offset, cnt := arena.AppendPathOps(ops)
	n.OpOffset = offset
	n.OpCount = cnt
	return nil
}

func parsePoints(b *mubuf.Buffer, arena *svg.Arena, n *svg.Node, codec floatwire.Codec) error {
	count, err := intcodec.ReadVLU(b)
	if err != nil {
		return err
	}
	pts := make([]svg.Point, 0, count)
	for i := uint64(0); i < count; i++ {
		x, err := codec.ReadF32(b)
		if err != nil {
			return err
		}
		y, err := codec.ReadF32(b)
		if err != nil {
			return err
		}
		pts = append(pts, svg.Point{X: x, Y: y})
	}
	offset, cnt := arena.AppendPoints(pts)
	n.PointOffset = offset
	n.PointCount = cnt
	return nil
}
