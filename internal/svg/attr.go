package svg

// Attr enumerates every recognized attribute across all element kinds.
// Values and ordering follow the original parser's attribute table so
// the binary wire format's attr_byte values are stable.
type Attr uint8

const (
	AttrNone Attr = iota
	AttrDisplay
	AttrFill
	AttrFillOpacity
	AttrFillRule
	AttrFontSize
	AttrID
	AttrOffset
	AttrStopColor
	AttrStopOpacity
	AttrStroke
	AttrStrokeWidth
	AttrStrokeDasharray
	AttrStrokeDashoffset
	AttrStrokeOpacity
	AttrStrokeLinecap
	AttrStrokeLinejoin
	AttrStrokeMiterlimit
	AttrStyle
	AttrTransform
	AttrSVGWidth
	AttrSVGHeight
	AttrSVGViewbox
	AttrSVGAspectratio
	AttrPathD
	AttrPolyPoints
	AttrRectX
	AttrRectY
	AttrRectWidth
	AttrRectHeight
	AttrRectRx
	AttrRectRy
	AttrCircleCx
	AttrCircleCy
	AttrCircleR
	AttrEllipseCx
	AttrEllipseCy
	AttrEllipseRx
	AttrEllipseRy
	AttrLineX1
	AttrLineY1
	AttrLineX2
	AttrLineY2
	AttrLgradientX1
	AttrLgradientY1
	AttrLgradientX2
	AttrLgradientY2
	AttrRgradientCx
	AttrRgradientCy
	AttrRgradientR
	AttrRgradientFx
	AttrRgradientFy
	AttrGradientUnits
	AttrGradientTransform
	AttrGradientSpread
	AttrGradientHref
	attrLimit = AttrGradientHref
)

// AttrLimit is the highest valid Attr value.
func AttrLimit() int { return int(attrLimit) }

// attrNames maps an Attr to its SVG/XML attribute name. Names with
// hyphens match the XML surface form; style-property names reuse the
// same table since style="k:v" pairs are replayed through the same
// attribute parser.
var attrNames = [...]string{
	AttrNone:              "",
	AttrDisplay:           "display",
	AttrFill:              "fill",
	AttrFillOpacity:       "fill-opacity",
	AttrFillRule:          "fill-rule",
	AttrFontSize:          "font-size",
	AttrID:                "id",
	AttrOffset:            "offset",
	AttrStopColor:         "stop-color",
	AttrStopOpacity:       "stop-opacity",
	AttrStroke:            "stroke",
	AttrStrokeWidth:       "stroke-width",
	AttrStrokeDasharray:   "stroke-dasharray",
	AttrStrokeDashoffset:  "stroke-dashoffset",
	AttrStrokeOpacity:     "stroke-opacity",
	AttrStrokeLinecap:     "stroke-linecap",
	AttrStrokeLinejoin:    "stroke-linejoin",
	AttrStrokeMiterlimit:  "stroke-miterlimit",
	AttrStyle:             "style",
	AttrTransform:         "transform",
	AttrSVGWidth:          "width",
	AttrSVGHeight:         "height",
	AttrSVGViewbox:        "viewBox",
	AttrSVGAspectratio:    "preserveAspectRatio",
	AttrPathD:             "d",
	AttrPolyPoints:        "points",
	AttrRectX:             "x",
	AttrRectY:             "y",
	AttrRectWidth:         "width",
	AttrRectHeight:        "height",
	AttrRectRx:            "rx",
	AttrRectRy:            "ry",
	AttrCircleCx:          "cx",
	AttrCircleCy:          "cy",
	AttrCircleR:           "r",
	AttrEllipseCx:         "cx",
	AttrEllipseCy:         "cy",
	AttrEllipseRx:         "rx",
	AttrEllipseRy:         "ry",
	AttrLineX1:            "x1",
	AttrLineY1:            "y1",
	AttrLineX2:            "x2",
	AttrLineY2:            "y2",
	AttrLgradientX1:       "x1",
	AttrLgradientY1:       "y1",
	AttrLgradientX2:       "x2",
	AttrLgradientY2:       "y2",
	AttrRgradientCx:       "cx",
	AttrRgradientCy:       "cy",
	AttrRgradientR:        "r",
	AttrRgradientFx:       "fx",
	AttrRgradientFy:       "fy",
	AttrGradientUnits:     "gradientUnits",
	AttrGradientTransform: "gradientTransform",
	AttrGradientSpread:    "spreadMethod",
	AttrGradientHref:      "href",
}

// AttrName returns attr's XML attribute name.
func AttrName(attr Attr) string {
	if int(attr) < len(attrNames) {
		return attrNames[attr]
	}
	return ""
}

// Type identifies how an attribute's value is stored, rendered as text,
// and encoded in the binary format (the table in spec §4.4).
type Type uint8

const (
	TypeEnum Type = iota
	TypeID
	TypeLength
	TypeColor
	TypeTransform
	TypeDasharray
	TypeFloat
	TypeViewbox
	TypeAspectratio
	TypePath
	TypePoints
)

// attrTypes is the (type_kind) half of the typeinfo table; the
// byte_offset_into_node half is replaced by typeinfo.go's get/set
// closures, Go having no offsetof.
var attrTypes = [...]Type{
	AttrDisplay:           TypeEnum,
	AttrFill:              TypeColor,
	AttrFillOpacity:       TypeFloat,
	AttrFillRule:          TypeEnum,
	AttrFontSize:          TypeLength,
	AttrID:                TypeID,
	AttrOffset:            TypeLength,
	AttrStopColor:         TypeColor,
	AttrStopOpacity:       TypeFloat,
	AttrStroke:            TypeColor,
	AttrStrokeWidth:       TypeLength,
	AttrStrokeDasharray:   TypeDasharray,
	AttrStrokeDashoffset:  TypeLength,
	AttrStrokeOpacity:     TypeFloat,
	AttrStrokeLinecap:     TypeEnum,
	AttrStrokeLinejoin:    TypeEnum,
	AttrStrokeMiterlimit:  TypeFloat,
	AttrTransform:         TypeTransform,
	AttrSVGWidth:          TypeLength,
	AttrSVGHeight:         TypeLength,
	AttrSVGViewbox:        TypeViewbox,
	AttrSVGAspectratio:    TypeAspectratio,
	AttrPathD:             TypePath,
	AttrPolyPoints:        TypePoints,
	AttrRectX:             TypeLength,
	AttrRectY:             TypeLength,
	AttrRectWidth:         TypeLength,
	AttrRectHeight:        TypeLength,
	AttrRectRx:            TypeLength,
	AttrRectRy:            TypeLength,
	AttrCircleCx:          TypeLength,
	AttrCircleCy:          TypeLength,
	AttrCircleR:           TypeLength,
	AttrEllipseCx:         TypeLength,
	AttrEllipseCy:         TypeLength,
	AttrEllipseRx:         TypeLength,
	AttrEllipseRy:         TypeLength,
	AttrLineX1:            TypeLength,
	AttrLineY1:            TypeLength,
	AttrLineX2:            TypeLength,
	AttrLineY2:            TypeLength,
	AttrLgradientX1:       TypeLength,
	AttrLgradientY1:       TypeLength,
	AttrLgradientX2:       TypeLength,
	AttrLgradientY2:       TypeLength,
	AttrRgradientCx:       TypeLength,
	AttrRgradientCy:       TypeLength,
	AttrRgradientR:        TypeLength,
	AttrRgradientFx:       TypeLength,
	AttrRgradientFy:       TypeLength,
	AttrGradientUnits:     TypeEnum,
	AttrGradientTransform: TypeTransform,
	AttrGradientSpread:    TypeEnum,
	AttrGradientHref:      TypeID,
}

// AttrType returns the wire/text representation kind for attr.
func AttrType(attr Attr) Type {
	if int(attr) < len(attrTypes) {
		return attrTypes[attr]
	}
	return TypeEnum
}

// Small enum-valued attribute domains. Each has a DEFAULT entry at index
// 0 matching the C enum layout (musvg_*_default == 0).
type (
	LinecapType  uint8
	LinejoinType uint8
	FillruleType uint8
	DisplayType  uint8
	UnitType     uint8
	AlignType    uint8
	CropType     uint8
	SpreadType   uint8
	GradUnitType uint8
)

const (
	LinecapDefault LinecapType = iota
	LinecapButt
	LinecapRound
	LinecapSquare
	linecapLimit = LinecapSquare
)

const (
	LinejoinDefault LinejoinType = iota
	LinejoinMiter
	LinejoinRound
	LinejoinBevel
	linejoinLimit = LinejoinBevel
)

const (
	FillruleDefault FillruleType = iota
	FillruleNonzero
	FillruleEvenodd
	fillruleLimit = FillruleEvenodd
)

const (
	DisplayDefault DisplayType = iota
	DisplayInline
	DisplayNone
	displayLimit = DisplayNone
)

const (
	UnitDefault UnitType = iota
	UnitUser
	UnitPx
	UnitPt
	UnitPc
	UnitMm
	UnitCm
	UnitIn
	UnitPercent
	UnitEm
	UnitEx
	unitLimit = UnitEx
)

const (
	SpreadDefault SpreadType = iota
	SpreadPad
	SpreadReflect
	SpreadRepeat
	spreadLimit = SpreadRepeat
)

const (
	GradUnitDefault GradUnitType = iota
	GradUnitUser
	GradUnitOBB
	gradUnitLimit = GradUnitOBB
)

const (
	AlignDefault AlignType = iota
	AlignNone
	AlignMin
	AlignMid
	AlignMax
	alignLimit = AlignMax
)

const (
	CropDefault CropType = iota
	CropNone
	CropMeet
	CropSlice
	cropLimit = CropSlice
)

var linecapNames = [...]string{LinecapDefault: "", LinecapButt: "butt", LinecapRound: "round", LinecapSquare: "square"}
var linejoinNames = [...]string{LinejoinDefault: "", LinejoinMiter: "miter", LinejoinRound: "round", LinejoinBevel: "bevel"}
var fillruleNames = [...]string{FillruleDefault: "", FillruleNonzero: "nonzero", FillruleEvenodd: "evenodd"}
var displayNames = [...]string{DisplayDefault: "", DisplayInline: "inline", DisplayNone: "none"}
var unitNames = [...]string{
	UnitDefault: "", UnitUser: "", UnitPx: "px", UnitPt: "pt", UnitPc: "pc",
	UnitMm: "mm", UnitCm: "cm", UnitIn: "in", UnitPercent: "%", UnitEm: "em", UnitEx: "ex",
}
var spreadNames = [...]string{SpreadDefault: "", SpreadPad: "pad", SpreadReflect: "reflect", SpreadRepeat: "repeat"}
var gradUnitNames = [...]string{GradUnitDefault: "", GradUnitUser: "userSpaceOnUse", GradUnitOBB: "objectBoundingBox"}
var alignNames = [...]string{AlignDefault: "", AlignNone: "none", AlignMin: "Min", AlignMid: "Mid", AlignMax: "Max"}
var cropNames = [...]string{CropDefault: "", CropNone: "none", CropMeet: "meet", CropSlice: "slice"}

func nameOf(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return ""
}

func indexOf(names []string, s string) (uint8, bool) {
	for i, n := range names {
		if i != 0 && n == s {
			return uint8(i), true
		}
	}
	return 0, false
}

// ParseLinecap/ParseLinejoin/... resolve an attribute's text keyword to
// its enum value; ok is false for an unrecognized keyword (callers treat
// that as a format error, not silently-default).

func ParseLinecap(s string) (LinecapType, bool) {
	v, ok := indexOf(linecapNames[:], s)
	return LinecapType(v), ok
}

func ParseLinejoin(s string) (LinejoinType, bool) {
	v, ok := indexOf(linejoinNames[:], s)
	return LinejoinType(v), ok
}

func ParseFillrule(s string) (FillruleType, bool) {
	v, ok := indexOf(fillruleNames[:], s)
	return FillruleType(v), ok
}

func ParseDisplay(s string) (DisplayType, bool) {
	v, ok := indexOf(displayNames[:], s)
	return DisplayType(v), ok
}

func ParseSpread(s string) (SpreadType, bool) {
	v, ok := indexOf(spreadNames[:], s)
	return SpreadType(v), ok
}

func ParseGradUnit(s string) (GradUnitType, bool) {
	v, ok := indexOf(gradUnitNames[:], s)
	return GradUnitType(v), ok
}

func ParseCrop(s string) (CropType, bool) {
	v, ok := indexOf(cropNames[:], s)
	return CropType(v), ok
}

// ParseUnit resolves a length suffix ("px", "%", "" for user units, ...)
// to its UnitType. Unlike the other enum parsers, an empty suffix is a
// valid match (UnitUser), so this does not use indexOf's "index 0 never
// matches" rule.
func ParseUnit(s string) (UnitType, bool) {
	if s == "" {
		return UnitUser, true
	}
	for i, n := range unitNames {
		if i > int(UnitUser) && n == s {
			return UnitType(i), true
		}
	}
	return UnitDefault, false
}

func FormatLinecap(v LinecapType) string  { return nameOf(linecapNames[:], uint8(v)) }
func FormatLinejoin(v LinejoinType) string { return nameOf(linejoinNames[:], uint8(v)) }
func FormatFillrule(v FillruleType) string { return nameOf(fillruleNames[:], uint8(v)) }
func FormatDisplay(v DisplayType) string   { return nameOf(displayNames[:], uint8(v)) }
func FormatSpread(v SpreadType) string     { return nameOf(spreadNames[:], uint8(v)) }
func FormatGradUnit(v GradUnitType) string { return nameOf(gradUnitNames[:], uint8(v)) }
func FormatCrop(v CropType) string         { return nameOf(cropNames[:], uint8(v)) }
func FormatUnit(v UnitType) string         { return nameOf(unitNames[:], uint8(v)) }

// Limit constants for the small enum domains, exposed so the binary
// codec can normalize a raw byte mod (limit+1) before casting, keeping
// a corrupt stream from producing an out-of-range enum value.
func LinecapLimit() int  { return int(linecapLimit) }
func LinejoinLimit() int { return int(linejoinLimit) }
func FillruleLimit() int { return int(fillruleLimit) }
func DisplayLimit() int  { return int(displayLimit) }
func UnitLimit() int     { return int(unitLimit) }
func SpreadLimit() int   { return int(spreadLimit) }
func GradUnitLimit() int { return int(gradUnitLimit) }
func AlignLimit() int    { return int(alignLimit) }
func CropLimit() int     { return int(cropLimit) }

// ParseAlignWord resolves one "Min"/"Mid"/"Max" token from a
// preserveAspectRatio align value ("xMidYMid" splits into two of these).
func ParseAlignWord(s string) (AlignType, bool) {
	switch s {
	case "Min":
		return AlignMin, true
	case "Mid":
		return AlignMid, true
	case "Max":
		return AlignMax, true
	default:
		return AlignDefault, false
	}
}

func FormatAlignWord(v AlignType) string {
	switch v {
	case AlignMin:
		return "Min"
	case AlignMid:
		return "Mid"
	case AlignMax:
		return "Max"
	default:
		return ""
	}
}
