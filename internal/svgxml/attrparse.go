package svgxml

import (
	"strconv"
	"strings"

	"github.com/scigolib/musvg/internal/svg"
)

// scanFloat scans a leading float from s and returns it plus the
// unconsumed remainder.
func scanFloat(s string) (float64, string, bool) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsBefore := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digitsBefore++
	}
	digitsAfter := 0
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digitsAfter++
		}
	}
	if digitsBefore == 0 && digitsAfter == 0 {
		return 0, s, false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, s, false
	}
	return v, s[i:], true
}

func splitNums(s string) []string {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	return fields
}

// parseLength parses a <length>: a float plus an optional unit suffix.
func parseLength(s string) (svg.Length, error) {
	s = strings.TrimSpace(s)
	v, rest, ok := scanFloat(s)
	if !ok {
		return svg.Length{}, errBadLength(s)
	}
	unit, ok := svg.ParseUnit(strings.TrimSpace(rest))
	if !ok {
		return svg.Length{}, errBadLength(s)
	}
	return svg.Length{Value: float32(v), Unit: unit}, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errBadFloat(s)
	}
	return float32(v), nil
}

// parseTransformList parses a transform="fn(args) fn(args) ..." value
// into its constituent ops, left to right.
func parseTransformList(s string) ([]svg.Transform, error) {
	s = strings.TrimSpace(s)
	var ops []svg.Transform
	for len(s) > 0 {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			break
		}
		name := strings.TrimSpace(s[:open])
		close := strings.IndexByte(s[open:], ')')
		if close < 0 {
			return nil, errBadTransform(s)
		}
		close += open
		argStr := s[open+1 : close]
		fields := splitNums(argStr)
		var args [6]float32
		for i, f := range fields {
			if i >= 6 {
				break
			}
			v, err := parseFloat(f)
			if err != nil {
				return nil, errBadTransform(s)
			}
			args[i] = v
		}
		var tt svg.TransformType
		switch name {
		case "matrix":
			tt = svg.TransformMatrix
		case "translate":
			tt = svg.TransformTranslate
		case "scale":
			tt = svg.TransformScale
		case "rotate":
			tt = svg.TransformRotate
		case "skewX":
			tt = svg.TransformSkewX
		case "skewY":
			tt = svg.TransformSkewY
		default:
			return nil, errBadTransform(s)
		}
		ops = append(ops, svg.Transform{Type: tt, NArgs: len(fields), Args: args})
		s = strings.TrimSpace(s[close+1:])
	}
	if len(ops) == 0 {
		return nil, errBadTransform(s)
	}
	return ops, nil
}

// resolveTransform collapses a parsed op list to the single Transform
// value stored on a node: a lone op keeps its original type/args, two or
// more collapse to a composed matrix (spec's "translate(...) rotate(...)
// parsed twice becomes a matrix transform" seed scenario).
func resolveTransform(ops []svg.Transform) svg.Transform {
	if len(ops) == 1 {
		svg.ComputeMatrix(&ops[0])
		return ops[0]
	}
	m := svg.ComposeTransforms(ops)
	return svg.Transform{Type: svg.TransformMatrix, NArgs: 6, Args: m, M: m}
}

func parseDasharray(s string) (svg.Dasharray, error) {
	fields := splitNums(s)
	var d svg.Dasharray
	for i, f := range fields {
		if i >= len(d.Dashes) {
			break
		}
		v, rest, ok := scanFloat(f)
		_ = rest
		if !ok {
			return svg.Dasharray{}, errBadDasharray(s)
		}
		d.Dashes[i] = float32(v)
		d.Count++
	}
	return d, nil
}

func parseViewbox(s string) (svg.Viewbox, error) {
	fields := splitNums(s)
	if len(fields) != 4 {
		return svg.Viewbox{}, errBadViewbox(s)
	}
	vals := make([]float32, 4)
	for i, f := range fields {
		v, err := parseFloat(f)
		if err != nil {
			return svg.Viewbox{}, errBadViewbox(s)
		}
		vals[i] = v
	}
	return svg.Viewbox{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// parseAspectratio parses preserveAspectRatio="[defer] <align> [meet|slice]".
// "none" as align maps both axes to AlignNone; anything else must match
// x(Min|Mid|Max)Y(Min|Mid|Max).
func parseAspectratio(s string) (svg.Aspectratio, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return svg.Aspectratio{}, errBadAspectratio(s)
	}
	if fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return svg.Aspectratio{}, errBadAspectratio(s)
	}
	align := fields[0]

	var ar svg.Aspectratio
	if align == "none" {
		ar.AlignX, ar.AlignY = svg.AlignNone, svg.AlignNone
	} else if len(align) == 8 && align[4] == 'Y' {
		ax, okX := svg.ParseAlignWord(align[1:4])
		ay, okY := svg.ParseAlignWord(align[5:8])
		if !okX || !okY {
			return svg.Aspectratio{}, errBadAspectratio(s)
		}
		ar.AlignX, ar.AlignY = ax, ay
	} else {
		return svg.Aspectratio{}, errBadAspectratio(s)
	}

	ar.AlignType = svg.CropMeet
	if len(fields) > 1 {
		crop, ok := svg.ParseCrop(fields[1])
		if !ok {
			return svg.Aspectratio{}, errBadAspectratio(s)
		}
		ar.AlignType = crop
	}
	return ar, nil
}
