// Package svg implements the in-memory arena representation of a parsed
// SVG document: the node/path-op/point arrays, the common attribute
// block with its presence bitmap, and the attribute type table that
// drives both text and binary codecs.
package svg

// Kind identifies an element's variant payload in Node.
type Kind uint8

const (
	KindNone Kind = iota
	KindSVG
	KindG
	KindDefs
	KindPath
	KindRect
	KindCircle
	KindEllipse
	KindLine
	KindPolyline
	KindPolygon
	KindLinearGradient
	KindRadialGradient
	KindStop
	kindLimit = KindStop
)

var kindNames = [...]string{
	KindNone:           "",
	KindSVG:            "svg",
	KindG:              "g",
	KindDefs:           "defs",
	KindPath:           "path",
	KindRect:           "rect",
	KindCircle:         "circle",
	KindEllipse:        "ellipse",
	KindLine:           "line",
	KindPolyline:       "polyline",
	KindPolygon:        "polygon",
	KindLinearGradient: "linearGradient",
	KindRadialGradient: "radialGradient",
	KindStop:           "stop",
}

// KindName returns the element tag name for k, or "" for KindNone.
func KindName(k Kind) string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return ""
}

// KindByName returns the Kind for an element tag name and whether it was
// recognized.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if i != 0 && n == name {
			return Kind(i), true
		}
	}
	return KindNone, false
}

// KindLimit is the highest valid Kind value; binary element bytes are
// read modulo KindLimit+1 to keep a corrupt stream from indexing out of
// range.
func KindLimit() int { return int(kindLimit) }

// PathOpcode identifies one segment of a path's 'd' attribute.
type PathOpcode uint8

const (
	PathNone PathOpcode = iota
	PathClosepath
	PathMovetoAbs
	PathMovetoRel
	PathLinetoAbs
	PathLinetoRel
	PathCurvetoCubicAbs
	PathCurvetoCubicRel
	PathQuadraticCurveToAbs
	PathQuadraticCurveToRel
	PathEllipticalArcAbs
	PathEllipticalArcRel
	PathLineToHorizontalAbs
	PathLineToHorizontalRel
	PathLineToVerticalAbs
	PathLineToVerticalRel
	PathCurvetoCubicSmoothAbs
	PathCurvetoCubicSmoothRel
	PathCurvetoQuadraticSmoothAbs
	PathCurvetoQuadraticSmoothRel
	pathOpcodeLimit = PathCurvetoQuadraticSmoothRel
)

// PathOpArgCount gives the number of scalar float arguments each opcode
// consumes, indexed by PathOpcode. Elliptical arc commands
// carry 7 scalar args (rx, ry, x-axis-rotation, large-arc-flag,
// sweep-flag, x, y); closepath takes none.
var PathOpArgCount = [...]int{
	PathNone:                      0,
	PathClosepath:                 0,
	PathMovetoAbs:                 2,
	PathMovetoRel:                 2,
	PathLinetoAbs:                 2,
	PathLinetoRel:                 2,
	PathCurvetoCubicAbs:           6,
	PathCurvetoCubicRel:           6,
	PathQuadraticCurveToAbs:       4,
	PathQuadraticCurveToRel:       4,
	PathEllipticalArcAbs:          7,
	PathEllipticalArcRel:          7,
	PathLineToHorizontalAbs:       1,
	PathLineToHorizontalRel:       1,
	PathLineToVerticalAbs:         1,
	PathLineToVerticalRel:         1,
	PathCurvetoCubicSmoothAbs:     4,
	PathCurvetoCubicSmoothRel:     4,
	PathCurvetoQuadraticSmoothAbs: 2,
	PathCurvetoQuadraticSmoothRel: 2,
}

// PathOpcodeLimit is the highest valid PathOpcode value.
func PathOpcodeLimit() int { return int(pathOpcodeLimit) }

// pathCommandChar maps the 'd' attribute's single-letter commands to
// opcodes. Upper case is absolute, lower case relative, per the SVG path
// mini-language.
var pathCommandChar = map[byte]PathOpcode{
	'Z': PathClosepath, 'z': PathClosepath,
	'M': PathMovetoAbs, 'm': PathMovetoRel,
	'L': PathLinetoAbs, 'l': PathLinetoRel,
	'C': PathCurvetoCubicAbs, 'c': PathCurvetoCubicRel,
	'Q': PathQuadraticCurveToAbs, 'q': PathQuadraticCurveToRel,
	'A': PathEllipticalArcAbs, 'a': PathEllipticalArcRel,
	'H': PathLineToHorizontalAbs, 'h': PathLineToHorizontalRel,
	'V': PathLineToVerticalAbs, 'v': PathLineToVerticalRel,
	'S': PathCurvetoCubicSmoothAbs, 's': PathCurvetoCubicSmoothRel,
	'T': PathCurvetoQuadraticSmoothAbs, 't': PathCurvetoQuadraticSmoothRel,
}

// pathOpcodeChar is the inverse of pathCommandChar, used by the text
// emitter.
var pathOpcodeChar = map[PathOpcode]byte{
	PathClosepath:                 'Z',
	PathMovetoAbs:                 'M',
	PathMovetoRel:                 'm',
	PathLinetoAbs:                 'L',
	PathLinetoRel:                 'l',
	PathCurvetoCubicAbs:           'C',
	PathCurvetoCubicRel:           'c',
	PathQuadraticCurveToAbs:       'Q',
	PathQuadraticCurveToRel:       'q',
	PathEllipticalArcAbs:          'A',
	PathEllipticalArcRel:          'a',
	PathLineToHorizontalAbs:       'H',
	PathLineToHorizontalRel:       'h',
	PathLineToVerticalAbs:         'V',
	PathLineToVerticalRel:         'v',
	PathCurvetoCubicSmoothAbs:     'S',
	PathCurvetoCubicSmoothRel:     's',
	PathCurvetoQuadraticSmoothAbs: 'T',
	PathCurvetoQuadraticSmoothRel: 't',
}
