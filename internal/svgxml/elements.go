package svgxml

import "github.com/scigolib/musvg/internal/svg"

// genericAttrNames maps attribute names valid on any element kind to
// their Attr enum value.
var genericAttrNames = map[string]svg.Attr{
	"display":            svg.AttrDisplay,
	"fill":               svg.AttrFill,
	"fill-opacity":       svg.AttrFillOpacity,
	"fill-rule":          svg.AttrFillRule,
	"font-size":          svg.AttrFontSize,
	"id":                 svg.AttrID,
	"offset":             svg.AttrOffset,
	"stop-color":         svg.AttrStopColor,
	"stop-opacity":       svg.AttrStopOpacity,
	"stroke":             svg.AttrStroke,
	"stroke-width":       svg.AttrStrokeWidth,
	"stroke-dasharray":   svg.AttrStrokeDasharray,
	"stroke-dashoffset":  svg.AttrStrokeDashoffset,
	"stroke-opacity":     svg.AttrStrokeOpacity,
	"stroke-linecap":     svg.AttrStrokeLinecap,
	"stroke-linejoin":    svg.AttrStrokeLinejoin,
	"stroke-miterlimit":  svg.AttrStrokeMiterlimit,
	"transform":          svg.AttrTransform,
}

// kindAttrNames maps each element kind's geometry-attribute names to
// their Attr enum value; several names (x1/y1/x2/y2, cx/cy/r, ...) are
// shared across kinds but resolve to different Attr values, which is why
// this table is keyed by kind rather than flattened into one map.
var kindAttrNames = map[svg.Kind]map[string]svg.Attr{
	svg.KindSVG: {
		"width": svg.AttrSVGWidth, "height": svg.AttrSVGHeight,
		"viewBox": svg.AttrSVGViewbox, "preserveAspectRatio": svg.AttrSVGAspectratio,
	},
	svg.KindPath: {
		"d": svg.AttrPathD,
	},
	svg.KindPolyline: {
		"points": svg.AttrPolyPoints,
	},
	svg.KindPolygon: {
		"points": svg.AttrPolyPoints,
	},
	svg.KindRect: {
		"x": svg.AttrRectX, "y": svg.AttrRectY,
		"width": svg.AttrRectWidth, "height": svg.AttrRectHeight,
		"rx": svg.AttrRectRx, "ry": svg.AttrRectRy,
	},
	svg.KindCircle: {
		"cx": svg.AttrCircleCx, "cy": svg.AttrCircleCy, "r": svg.AttrCircleR,
	},
	svg.KindEllipse: {
		"cx": svg.AttrEllipseCx, "cy": svg.AttrEllipseCy,
		"rx": svg.AttrEllipseRx, "ry": svg.AttrEllipseRy,
	},
	svg.KindLine: {
		"x1": svg.AttrLineX1, "y1": svg.AttrLineY1,
		"x2": svg.AttrLineX2, "y2": svg.AttrLineY2,
	},
	svg.KindLinearGradient: {
		"x1": svg.AttrLgradientX1, "y1": svg.AttrLgradientY1,
		"x2": svg.AttrLgradientX2, "y2": svg.AttrLgradientY2,
		"gradientUnits": svg.AttrGradientUnits, "gradientTransform": svg.AttrGradientTransform,
		"spreadMethod": svg.AttrGradientSpread, "href": svg.AttrGradientHref,
		"xlink:href": svg.AttrGradientHref,
	},
	svg.KindRadialGradient: {
		"cx": svg.AttrRgradientCx, "cy": svg.AttrRgradientCy, "r": svg.AttrRgradientR,
		"fx": svg.AttrRgradientFx, "fy": svg.AttrRgradientFy,
		"gradientUnits": svg.AttrGradientUnits, "gradientTransform": svg.AttrGradientTransform,
		"spreadMethod": svg.AttrGradientSpread, "href": svg.AttrGradientHref,
		"xlink:href": svg.AttrGradientHref,
	},
}

// resolveAttr maps an XML attribute name to its Attr enum value for the
// given element kind, trying the kind-specific table first since it's
// more specific than the generic one.
func resolveAttr(kind svg.Kind, name string) (svg.Attr, bool) {
	if m, ok := kindAttrNames[kind]; ok {
		if attr, ok := m[name]; ok {
			return attr, true
		}
	}
	if attr, ok := genericAttrNames[name]; ok {
		return attr, true
	}
	return svg.AttrNone, false
}

// applyAttr parses value according to attr's Type and stores it on n
// (via the arena for path/points, via typeinfo's accessors otherwise),
// setting the presence bit either way.
func applyAttr(a *svg.Arena, n *svg.Node, attr svg.Attr, value string) error {
	switch svg.AttrType(attr) {
	case svg.TypePath:
		ops, points, err := svg.ParsePathData(value)
		if err != nil {
			return err
		}
		opOff, opCount := a.AppendPathOps(ops)
		n.OpOffset, n.OpCount = opOff, opCount
		if len(points) > 0 {
			// ParsePathData computes each op's PointOffset against its own
			// point slice, which starts at zero; AppendPoints lays that run
			// down after any points already pooled, so each op's offset is
			// rebased by the run's start.
			ptOff, _ := a.AppendPoints(points)
			if ptOff != 0 {
				for i := range a.PathOps[opOff : opOff+opCount] {
					a.PathOps[opOff+i].PointOffset += ptOff
				}
			}
		}
	case svg.TypePoints:
		pts, err := parsePointsList(value)
		if err != nil {
			return err
		}
		off, count := a.AppendPoints(pts)
		n.PointOffset, n.PointCount = off, count
	case svg.TypeLength:
		v, err := parseLength(value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetLength(n, v)
	case svg.TypeColor:
		v, err := svg.ParseColor(value)
		if err != nil {
			return errBadColor(value)
		}
		acc, _ := svg.Lookup(attr)
		acc.SetColor(n, v)
	case svg.TypeFloat:
		v, err := parseFloat(value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetFloat(n, v)
	case svg.TypeTransform:
		ops, err := parseTransformList(value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetTransform(n, resolveTransform(ops))
	case svg.TypeDasharray:
		v, err := parseDasharray(value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetDasharray(n, v)
	case svg.TypeViewbox:
		v, err := parseViewbox(value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetViewbox(n, v)
	case svg.TypeAspectratio:
		v, err := parseAspectratio(value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetAspect(n, v)
	case svg.TypeID:
		acc, _ := svg.Lookup(attr)
		acc.SetID(n, value)
	case svg.TypeEnum:
		v, err := parseEnumAttr(attr, value)
		if err != nil {
			return err
		}
		acc, _ := svg.Lookup(attr)
		acc.SetEnum(n, v)
	}
	n.Attr.SetAttr(attr)
	return nil
}

func parseEnumAttr(attr svg.Attr, value string) (uint8, error) {
	var ok bool
	var v uint8
	switch attr {
	case svg.AttrDisplay:
		var t svg.DisplayType
		t, ok = svg.ParseDisplay(value)
		v = uint8(t)
	case svg.AttrFillRule:
		var t svg.FillruleType
		t, ok = svg.ParseFillrule(value)
		v = uint8(t)
	case svg.AttrStrokeLinecap:
		var t svg.LinecapType
		t, ok = svg.ParseLinecap(value)
		v = uint8(t)
	case svg.AttrStrokeLinejoin:
		var t svg.LinejoinType
		t, ok = svg.ParseLinejoin(value)
		v = uint8(t)
	case svg.AttrGradientUnits:
		var t svg.GradUnitType
		t, ok = svg.ParseGradUnit(value)
		v = uint8(t)
	case svg.AttrGradientSpread:
		var t svg.SpreadType
		t, ok = svg.ParseSpread(value)
		v = uint8(t)
	}
	if !ok {
		return 0, errBadEnum(svg.AttrName(attr), value)
	}
	return v, nil
}

// parsePointsList parses a points="x1,y1 x2,y2 ..." attribute (polyline
// / polygon) into a flat point list.
func parsePointsList(s string) ([]svg.Point, error) {
	fields := splitNums(s)
	if len(fields)%2 != 0 {
		return nil, errBadPoints(s)
	}
	pts := make([]svg.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseFloat(fields[i])
		if err != nil {
			return nil, errBadPoints(s)
		}
		y, err := parseFloat(fields[i+1])
		if err != nil {
			return nil, errBadPoints(s)
		}
		pts = append(pts, svg.Point{X: x, Y: y})
	}
	return pts, nil
}
