package svg

// Length is a numeric value paired with a unit, SVG's `<length>` type.
type Length struct {
	Value float32
	Unit  UnitType
}

// Color is a 24-bit RGB value plus a presence flag distinguishing
// "unset" from "none" from an actual color.
type Color struct {
	RGB     uint32
	Present bool
}

// Transform holds one parsed transform op (type + scalar args, up to the
// 6 matrix() takes) and its composed 2x3 matrix.
type Transform struct {
	Type  TransformType
	NArgs int
	Args  [6]float32
	M     [6]float32 // a b c d e f, row-major 2x3 affine matrix
}

// TransformType identifies a single transform function in a
// transform="..." list.
type TransformType uint8

const (
	TransformMatrix TransformType = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
	transformTypeLimit = TransformSkewY
)

// TransformTypeLimit is the highest valid TransformType value.
func TransformTypeLimit() int { return int(transformTypeLimit) }

// Dasharray is a fixed-capacity stroke-dasharray value.
type Dasharray struct {
	Dashes [8]float32
	Count  int
}

// Viewbox is the svg element's viewBox attribute.
type Viewbox struct {
	X, Y, Width, Height float32
}

// Aspectratio is the parsed preserveAspectRatio attribute.
type Aspectratio struct {
	AlignX, AlignY AlignType
	AlignType      CropType
}

// PathOp is one segment of a path's arena-pooled op list.
type PathOp struct {
	Code        PathOpcode
	PointOffset int
	PointCount  int
}

// Point is one (x, y) pair in the arena-pooled point pool, shared by
// path data and polyline/polygon point lists.
type Point struct {
	X, Y float32
}

// CommonAttr holds every attribute any element kind can carry, plus the
// presence bitmap recording which were actually set. attrTypes/typeinfo
// index into this struct via the accessors in typeinfo.go.
type CommonAttr struct {
	Bitmap uint64

	ID     string
	Xform  Transform
	HasXform bool

	FillColor   Color
	StrokeColor Color
	FillOpacity float32
	StrokeOpacity     float32
	StrokeMiterlimit  float32
	StrokeWidth       Length
	StrokeDashoffset  Length
	StrokeDasharray   Dasharray
	StrokeLinejoin    LinejoinType
	StrokeLinecap     LinecapType
	FillRule          FillruleType
	Display           DisplayType
	FontSize          Length

	StopColor   Color
	StopOpacity float32
	StopOffset  Length
}

// HasAttr reports whether attr's bit is set in the presence bitmap.
func (c *CommonAttr) HasAttr(attr Attr) bool {
	return c.Bitmap&(uint64(1)<<uint(attr)) != 0
}

// SetAttr marks attr present.
func (c *CommonAttr) SetAttr(attr Attr) {
	c.Bitmap |= uint64(1) << uint(attr)
}

// EachAttr calls fn for every attribute set in the presence bitmap, in
// ascending bit order, clearing the lowest set bit each iteration
// (spec §9's "trailing-zero-clear" iteration idiom).
func (c *CommonAttr) EachAttr(fn func(Attr)) {
	bm := c.Bitmap
	for bm != 0 {
		bit := bm & (^bm + 1) // isolate lowest set bit
		idx := 0
		for bit > 1 {
			bit >>= 1
			idx++
		}
		fn(Attr(idx))
		bm &^= uint64(1) << uint(idx)
	}
}

// Node is one element in the arena's sibling-chain tree. Kind-specific
// geometry lives in flat, always-present fields rather than a union
// (Go has none): only the fields matching Kind are meaningful, mirroring
// the original's tagged struct without the unsafe aliasing.
type Node struct {
	Kind   Kind
	Next   int // sibling index, NodeSentinel if none
	Parent int // parent index, NodeSentinel at root

	Attr CommonAttr

	// svg
	Viewbox     Viewbox
	HasViewbox  bool
	Aspect      Aspectratio
	HasAspect   bool
	Width       Length
	Height      Length

	// path
	OpOffset int
	OpCount  int

	// rect
	RectX, RectY, RectWidth, RectHeight, RectRx, RectRy Length

	// circle
	CircleCx, CircleCy, CircleR Length

	// ellipse
	EllipseCx, EllipseCy, EllipseRx, EllipseRy Length

	// line
	LineX1, LineY1, LineX2, LineY2 Length

	// polyline / polygon
	PointOffset, PointCount int

	// linearGradient / radialGradient
	GradientID int
	Ref        string
	GradXform  Transform
	HasGradXform bool
	Spread     SpreadType
	Units      GradUnitType
	X1, Y1, X2, Y2     Length // linearGradient
	Cx, Cy, R, Fx, Fy  Length // radialGradient
}

// NodeSentinel marks "no sibling"/"no parent" in Node.Next/Node.Parent.
const NodeSentinel = -1
