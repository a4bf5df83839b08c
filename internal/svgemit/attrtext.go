package svgemit

import (
	"strconv"
	"strings"

	"github.com/scigolib/musvg/internal/svg"
)

// SkewYTextName is skewY's text-form function name. The original source
// tables spell it "skeyY"; reproducing that verbatim keeps wire
// compatibility with files already written by it. A package variable
// rather than an inlined literal so a caller that wants the corrected
// spelling can override it.
var SkewYTextName = "skeyY"

func transformName(t svg.TransformType) string {
	switch t {
	case svg.TransformMatrix:
		return "matrix"
	case svg.TransformTranslate:
		return "translate"
	case svg.TransformScale:
		return "scale"
	case svg.TransformRotate:
		return "rotate"
	case svg.TransformSkewX:
		return "skewX"
	case svg.TransformSkewY:
		return SkewYTextName
	default:
		return "matrix"
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatEnumText(attr svg.Attr, v uint8) string {
	switch attr {
	case svg.AttrDisplay:
		return svg.FormatDisplay(svg.DisplayType(v))
	case svg.AttrFillRule:
		return svg.FormatFillrule(svg.FillruleType(v))
	case svg.AttrStrokeLinecap:
		return svg.FormatLinecap(svg.LinecapType(v))
	case svg.AttrStrokeLinejoin:
		return svg.FormatLinejoin(svg.LinejoinType(v))
	case svg.AttrGradientUnits:
		return svg.FormatGradUnit(svg.GradUnitType(v))
	case svg.AttrGradientSpread:
		return svg.FormatSpread(svg.SpreadType(v))
	default:
		return ""
	}
}

func formatLengthText(l svg.Length) string {
	return formatFloat(l.Value) + svg.FormatUnit(l.Unit)
}

func formatTransformText(t svg.Transform) string {
	var args []float32
	if t.Type == svg.TransformMatrix {
		args = t.M[:]
	} else {
		args = t.Args[:t.NArgs]
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatFloat(a)
	}
	return transformName(t.Type) + "(" + strings.Join(parts, ",") + ")"
}

func formatDasharrayText(d svg.Dasharray) string {
	parts := make([]string, d.Count)
	for i := 0; i < d.Count; i++ {
		parts[i] = formatFloat(d.Dashes[i])
	}
	return strings.Join(parts, ",")
}

func formatViewboxText(v svg.Viewbox) string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Width) + " " + formatFloat(v.Height)
}

func formatAspectratioText(a svg.Aspectratio) string {
	var align string
	if a.AlignX == svg.AlignNone || a.AlignY == svg.AlignNone {
		align = "none"
	} else {
		align = "x" + svg.FormatAlignWord(a.AlignX) + "Y" + svg.FormatAlignWord(a.AlignY)
	}
	if crop := svg.FormatCrop(a.AlignType); crop != "" && crop != "meet" {
		return align + " " + crop
	}
	return align
}

func formatPointsText(pts []svg.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	return strings.Join(parts, " ")
}

// attrValueText renders attr's text-form value for n, reading
// arena-pooled path/points storage directly since typeinfo.Lookup
// cannot reach it.
func attrValueText(arena *svg.Arena, n *svg.Node, attr svg.Attr) string {
	switch svg.AttrType(attr) {
	case svg.TypePath:
		ops := arena.PathOps[n.OpOffset : n.OpOffset+n.OpCount]
		return svg.FormatPathData(ops, arena.Points)
	case svg.TypePoints:
		return formatPointsText(arena.Points[n.PointOffset : n.PointOffset+n.PointCount])
	case svg.TypeID:
		acc, _ := svg.Lookup(attr)
		return acc.GetID(n)
	case svg.TypeEnum:
		acc, _ := svg.Lookup(attr)
		return formatEnumText(attr, acc.GetEnum(n))
	case svg.TypeLength:
		acc, _ := svg.Lookup(attr)
		return formatLengthText(acc.GetLength(n))
	case svg.TypeColor:
		acc, _ := svg.Lookup(attr)
		return svg.FormatColor(acc.GetColor(n))
	case svg.TypeFloat:
		acc, _ := svg.Lookup(attr)
		return formatFloat(acc.GetFloat(n))
	case svg.TypeTransform:
		acc, _ := svg.Lookup(attr)
		return formatTransformText(acc.GetTransform(n))
	case svg.TypeDasharray:
		acc, _ := svg.Lookup(attr)
		return formatDasharrayText(acc.GetDasharray(n))
	case svg.TypeViewbox:
		acc, _ := svg.Lookup(attr)
		return formatViewboxText(acc.GetViewbox(n))
	case svg.TypeAspectratio:
		acc, _ := svg.Lookup(attr)
		return formatAspectratioText(acc.GetAspect(n))
	}
	return ""
}

func escapeAttr(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
