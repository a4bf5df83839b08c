package svg

// typeinfo replaces the original's (kind, byte_offset) dispatch table —
// parse/emit code walked a struct by raw offset plus a type tag to reach
// whichever field an Attr lived in. Go has no offsetof, so each Attr gets
// a pair of closures here instead: one that reaches into a *Node and
// returns its slot, one that stores into it. Every codec (text, binary)
// dispatches off these tables plus AttrType; the codecs switch on Attr
// only to pick an enum attribute's name table or limit.

// Accessor bundles the get/set closures for one Attr's storage; only the
// pair matching AttrType(attr) is populated, the rest left nil.
type Accessor struct {
	GetLength    func(n *Node) Length
	SetLength    func(n *Node, v Length)
	GetColor     func(n *Node) Color
	SetColor     func(n *Node, v Color)
	GetFloat     func(n *Node) float32
	SetFloat     func(n *Node, v float32)
	GetEnum      func(n *Node) uint8
	SetEnum      func(n *Node, v uint8)
	GetTransform func(n *Node) Transform
	SetTransform func(n *Node, v Transform)
	GetID        func(n *Node) string
	SetID        func(n *Node, v string)
	GetDasharray func(n *Node) Dasharray
	SetDasharray func(n *Node, v Dasharray)
	GetViewbox   func(n *Node) Viewbox
	SetViewbox   func(n *Node, v Viewbox)
	GetAspect    func(n *Node) Aspectratio
	SetAspect    func(n *Node, v Aspectratio)
}

func lengthAccessor(get func(n *Node) *Length) Accessor {
	return Accessor{
		GetLength: func(n *Node) Length { return *get(n) },
		SetLength: func(n *Node, v Length) { *get(n) = v },
	}
}

func colorAccessor(get func(n *Node) *Color) Accessor {
	return Accessor{
		GetColor: func(n *Node) Color { return *get(n) },
		SetColor: func(n *Node, v Color) { *get(n) = v },
	}
}

func floatAccessor(get func(n *Node) *float32) Accessor {
	return Accessor{
		GetFloat: func(n *Node) float32 { return *get(n) },
		SetFloat: func(n *Node, v float32) { *get(n) = v },
	}
}

// typeinfo is keyed by Attr; Attr 0 (AttrNone) is intentionally absent.
var typeinfo = map[Attr]Accessor{
	AttrDisplay: {
		GetEnum: func(n *Node) uint8 { return uint8(n.Attr.Display) },
		SetEnum: func(n *Node, v uint8) { n.Attr.Display = DisplayType(v) },
	},
	AttrFill: colorAccessor(func(n *Node) *Color { return &n.Attr.FillColor }),
	AttrFillOpacity: floatAccessor(func(n *Node) *float32 { return &n.Attr.FillOpacity }),
	AttrFillRule: {
		GetEnum: func(n *Node) uint8 { return uint8(n.Attr.FillRule) },
		SetEnum: func(n *Node, v uint8) { n.Attr.FillRule = FillruleType(v) },
	},
	AttrFontSize: lengthAccessor(func(n *Node) *Length { return &n.Attr.FontSize }),
	AttrID: {
		GetID: func(n *Node) string { return n.Attr.ID },
		SetID: func(n *Node, v string) { n.Attr.ID = v },
	},
	AttrOffset:      lengthAccessor(func(n *Node) *Length { return &n.Attr.StopOffset }),
	AttrStopColor:   colorAccessor(func(n *Node) *Color { return &n.Attr.StopColor }),
	AttrStopOpacity: floatAccessor(func(n *Node) *float32 { return &n.Attr.StopOpacity }),
	AttrStroke:      colorAccessor(func(n *Node) *Color { return &n.Attr.StrokeColor }),
	AttrStrokeWidth: lengthAccessor(func(n *Node) *Length { return &n.Attr.StrokeWidth }),
	AttrStrokeDasharray: {
		GetDasharray: func(n *Node) Dasharray { return n.Attr.StrokeDasharray },
		SetDasharray: func(n *Node, v Dasharray) { n.Attr.StrokeDasharray = v },
	},
	AttrStrokeDashoffset: lengthAccessor(func(n *Node) *Length { return &n.Attr.StrokeDashoffset }),
	AttrStrokeOpacity:    floatAccessor(func(n *Node) *float32 { return &n.Attr.StrokeOpacity }),
	AttrStrokeLinecap: {
		GetEnum: func(n *Node) uint8 { return uint8(n.Attr.StrokeLinecap) },
		SetEnum: func(n *Node, v uint8) { n.Attr.StrokeLinecap = LinecapType(v) },
	},
	AttrStrokeLinejoin: {
		GetEnum: func(n *Node) uint8 { return uint8(n.Attr.StrokeLinejoin) },
		SetEnum: func(n *Node, v uint8) { n.Attr.StrokeLinejoin = LinejoinType(v) },
	},
	AttrStrokeMiterlimit: floatAccessor(func(n *Node) *float32 { return &n.Attr.StrokeMiterlimit }),
	AttrTransform: {
		GetTransform: func(n *Node) Transform { return n.Attr.Xform },
		SetTransform: func(n *Node, v Transform) { n.Attr.Xform = v; n.Attr.HasXform = true },
	},
	AttrSVGWidth:  lengthAccessor(func(n *Node) *Length { return &n.Width }),
	AttrSVGHeight: lengthAccessor(func(n *Node) *Length { return &n.Height }),
	AttrSVGViewbox: {
		GetViewbox: func(n *Node) Viewbox { return n.Viewbox },
		SetViewbox: func(n *Node, v Viewbox) { n.Viewbox = v; n.HasViewbox = true },
	},
	AttrSVGAspectratio: {
		GetAspect: func(n *Node) Aspectratio { return n.Aspect },
		SetAspect: func(n *Node, v Aspectratio) { n.Aspect = v; n.HasAspect = true },
	},
	AttrRectX:      lengthAccessor(func(n *Node) *Length { return &n.RectX }),
	AttrRectY:      lengthAccessor(func(n *Node) *Length { return &n.RectY }),
	AttrRectWidth:  lengthAccessor(func(n *Node) *Length { return &n.RectWidth }),
	AttrRectHeight: lengthAccessor(func(n *Node) *Length { return &n.RectHeight }),
	AttrRectRx:     lengthAccessor(func(n *Node) *Length { return &n.RectRx }),
	AttrRectRy:     lengthAccessor(func(n *Node) *Length { return &n.RectRy }),
	AttrCircleCx:   lengthAccessor(func(n *Node) *Length { return &n.CircleCx }),
	AttrCircleCy:   lengthAccessor(func(n *Node) *Length { return &n.CircleCy }),
	AttrCircleR:    lengthAccessor(func(n *Node) *Length { return &n.CircleR }),
	AttrEllipseCx:  lengthAccessor(func(n *Node) *Length { return &n.EllipseCx }),
	AttrEllipseCy:  lengthAccessor(func(n *Node) *Length { return &n.EllipseCy }),
	AttrEllipseRx:  lengthAccessor(func(n *Node) *Length { return &n.EllipseRx }),
	AttrEllipseRy:  lengthAccessor(func(n *Node) *Length { return &n.EllipseRy }),
	AttrLineX1:     lengthAccessor(func(n *Node) *Length { return &n.LineX1 }),
	AttrLineY1:     lengthAccessor(func(n *Node) *Length { return &n.LineY1 }),
	AttrLineX2:     lengthAccessor(func(n *Node) *Length { return &n.LineX2 }),
	AttrLineY2:     lengthAccessor(func(n *Node) *Length { return &n.LineY2 }),
	AttrLgradientX1: lengthAccessor(func(n *Node) *Length { return &n.X1 }),
	AttrLgradientY1: lengthAccessor(func(n *Node) *Length { return &n.Y1 }),
	AttrLgradientX2: lengthAccessor(func(n *Node) *Length { return &n.X2 }),
	AttrLgradientY2: lengthAccessor(func(n *Node) *Length { return &n.Y2 }),
	AttrRgradientCx: lengthAccessor(func(n *Node) *Length { return &n.Cx }),
	AttrRgradientCy: lengthAccessor(func(n *Node) *Length { return &n.Cy }),
	AttrRgradientR:  lengthAccessor(func(n *Node) *Length { return &n.R }),
	AttrRgradientFx: lengthAccessor(func(n *Node) *Length { return &n.Fx }),
	AttrRgradientFy: lengthAccessor(func(n *Node) *Length { return &n.Fy }),
	AttrGradientUnits: {
		GetEnum: func(n *Node) uint8 { return uint8(n.Units) },
		SetEnum: func(n *Node, v uint8) { n.Units = GradUnitType(v) },
	},
	AttrGradientTransform: {
		GetTransform: func(n *Node) Transform { return n.GradXform },
		SetTransform: func(n *Node, v Transform) { n.GradXform = v; n.HasGradXform = true },
	},
	AttrGradientSpread: {
		GetEnum: func(n *Node) uint8 { return uint8(n.Spread) },
		SetEnum: func(n *Node, v uint8) { n.Spread = SpreadType(v) },
	},
	AttrGradientHref: {
		GetID: func(n *Node) string { return n.Ref },
		SetID: func(n *Node, v string) { n.Ref = v },
	},
}

// Lookup returns attr's accessor pair, and whether one is registered.
// AttrPathD and AttrPolyPoints are deliberately absent: their storage
// (Arena-pooled PathOps/Points slices referenced by offset/count) can't
// be reached through a *Node alone, so the XML and binary parsers write
// those fields directly instead of through this table.
func Lookup(attr Attr) (Accessor, bool) {
	a, ok := typeinfo[attr]
	return a, ok
}
