package svg

import (
	"fmt"
	"strconv"
)

type pathScanner struct {
	s   string
	pos int
}

func (p *pathScanner) skipSep() {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		break
	}
}

func (p *pathScanner) peekCommand() (byte, bool) {
	p.skipSep()
	if p.pos >= len(p.s) {
		return 0, false
	}
	if _, ok := pathCommandChar[p.s[p.pos]]; ok {
		return p.s[p.pos], true
	}
	return 0, false
}

// nextNumber scans one float, SVG-path style: sign, digits, optional
// fractional part, optional exponent. Does not consume separators
// around it.
func (p *pathScanner) nextNumber() (float32, bool) {
	p.skipSep()
	start := p.pos
	n := len(p.s)
	i := p.pos
	if i < n && (p.s[i] == '+' || p.s[i] == '-') {
		i++
	}
	digitsBefore := 0
	for i < n && isDigit(p.s[i]) {
		i++
		digitsBefore++
	}
	digitsAfter := 0
	if i < n && p.s[i] == '.' {
		i++
		for i < n && isDigit(p.s[i]) {
			i++
			digitsAfter++
		}
	}
	if digitsBefore == 0 && digitsAfter == 0 {
		return 0, false
	}
	if i < n && (p.s[i] == 'e' || p.s[i] == 'E') {
		j := i + 1
		if j < n && (p.s[j] == '+' || p.s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && isDigit(p.s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	p.pos = i
	v, err := strconv.ParseFloat(p.s[start:i], 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParsePathData parses a path 'd' attribute into a flat op/point list
// suitable for Arena.AppendPathOps/AppendPoints. A bare coordinate pair
// following a moveto implicitly repeats as lineto (absolute after 'M',
// relative after 'm'), and any command letter with trailing numbers
// beyond its arity repeats implicitly, per the path mini-language.
func ParsePathData(d string) ([]PathOp, []Point, error) {
	sc := &pathScanner{s: d}
	var ops []PathOp
	var points []Point

	var cur byte
	have := false
	for {
		if c, ok := sc.peekCommand(); ok {
			cur = c
			have = true
			sc.pos++
		} else if !have {
			sc.skipSep()
			if sc.pos >= len(sc.s) {
				break
			}
			return nil, nil, fmt.Errorf("svg: path data: unexpected %q at %d", sc.s[sc.pos], sc.pos)
		} else if cur == 'M' {
			cur = 'L'
		} else if cur == 'm' {
			cur = 'l'
		}
		// else: repeat cur as-is

		code := pathCommandChar[cur]
		argc := PathOpArgCount[code]
		if argc == 0 {
			ops = append(ops, PathOp{Code: code})
			have = false
			continue
		}

		var args [7]float32
		for i := 0; i < argc; i++ {
			v, ok := sc.nextNumber()
			if !ok {
				return nil, nil, fmt.Errorf("svg: path data: expected number for %q arg %d", cur, i)
			}
			args[i] = v
		}
		offset := len(points)
		pairs := argc / 2
		for i := 0; i < pairs; i++ {
			points = append(points, Point{X: args[2*i], Y: args[2*i+1]})
		}
		if argc%2 == 1 {
			points = append(points, Point{X: args[argc-1]})
		}
		ops = append(ops, PathOp{Code: code, PointOffset: offset, PointCount: argc})

		sc.skipSep()
		if sc.pos >= len(sc.s) {
			break
		}
	}
	return ops, points, nil
}

// FormatPathData renders ops/points back into 'd' attribute text.
func FormatPathData(ops []PathOp, points []Point) string {
	out := make([]byte, 0, len(ops)*8)
	for _, op := range ops {
		out = append(out, pathOpcodeChar[op.Code])
		n := PathOpArgCount[op.Code]
		for i := 0; i < n; i++ {
			pi := op.PointOffset + i/2
			var v float32
			if i%2 == 0 {
				v = points[pi].X
			} else {
				v = points[pi].Y
			}
			if i > 0 {
				out = append(out, ' ')
			}
			out = strconv.AppendFloat(out, float64(v), 'g', -1, 32)
		}
	}
	return string(out)
}
