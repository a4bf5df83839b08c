package svg

import "math"

// IdentityMatrix returns the 2x3 identity affine matrix (a b c d e f).
func IdentityMatrix() [6]float32 {
	return [6]float32{1, 0, 0, 1, 0, 0}
}

// MatrixMultiply composes m = a * b (apply b first, then a), matching
// the original's xformMultiply.
func MatrixMultiply(a, b [6]float32) [6]float32 {
	return [6]float32{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// MatrixPremultiply replaces m with other * m, the composition order
// used when folding a new transform() function onto an element's
// already-accumulated matrix (xformPremultiply).
func MatrixPremultiply(m, other [6]float32) [6]float32 {
	return MatrixMultiply(other, m)
}

// ComputeMatrix fills in t.M from t.Type and t.Args.
func ComputeMatrix(t *Transform) {
	switch t.Type {
	case TransformMatrix:
		if t.NArgs < 6 {
			t.M = IdentityMatrix()
		} else {
			copy(t.M[:], t.Args[:6])
		}
	case TransformTranslate:
		tx, ty := t.Args[0], float32(0)
		if t.NArgs > 1 {
			ty = t.Args[1]
		}
		t.M = [6]float32{1, 0, 0, 1, tx, ty}
	case TransformScale:
		sx, sy := t.Args[0], t.Args[0]
		if t.NArgs > 1 {
			sy = t.Args[1]
		}
		t.M = [6]float32{sx, 0, 0, sy, 0, 0}
	case TransformRotate:
		rad := float64(t.Args[0]) * math.Pi / 180
		sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
		rot := [6]float32{cos, sin, -sin, cos, 0, 0}
		if t.NArgs >= 3 {
			cx, cy := t.Args[1], t.Args[2]
			toOrigin := [6]float32{1, 0, 0, 1, -cx, -cy}
			fromOrigin := [6]float32{1, 0, 0, 1, cx, cy}
			t.M = MatrixMultiply(fromOrigin, MatrixMultiply(rot, toOrigin))
		} else {
			t.M = rot
		}
	case TransformSkewX:
		tanv := float32(math.Tan(float64(t.Args[0]) * math.Pi / 180))
		t.M = [6]float32{1, 0, tanv, 1, 0, 0}
	case TransformSkewY:
		tanv := float32(math.Tan(float64(t.Args[0]) * math.Pi / 180))
		t.M = [6]float32{1, tanv, 0, 1, 0, 0}
	}
}

// ComposeTransforms folds a list of transform ops (as parsed left to
// right from a transform="..." attribute) into one composed matrix:
// each subsequent op is multiplied onto the right of the accumulated
// result (m = m * op), so the composed matrix applies the rightmost
// function first, as SVG defines for multiple transform functions.
func ComposeTransforms(ops []Transform) [6]float32 {
	m := IdentityMatrix()
	for i := range ops {
		ComputeMatrix(&ops[i])
		m = MatrixMultiply(m, ops[i].M)
	}
	return m
}
