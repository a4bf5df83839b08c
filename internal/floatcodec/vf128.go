package floatcodec

import (
	"errors"
	"math"
	stdbits "math/bits"

	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/intcodec"
	"github.com/scigolib/musvg/internal/mubuf"
)

// ErrVF128Overflow is returned when a decoded vf128 value's exponent or
// mantissa would not fit the target format, or when an encode's
// exponent needs more than the 2 bytes this codec supports.
var ErrVF128Overflow = errors.New("vf128: decoded field out of range")

// ErrVF128Format is returned for a lead byte combination that carries no
// legal interpretation (out-of-line, zero exponent bytes, zero fraction
// bytes).
var ErrVF128Format = errors.New("vf128: no legal form for this lead byte")

// renormalize64 expresses an IEEE f64 field pair as a 64-bit register
// with its leading one (implicit for normals, the topmost set bit for
// subnormals) left-justified at bit 63, plus the unbiased exponent that
// register's bit 63 corresponds to.
func renormalize64(ieeeExp int, ieeeMant uint64) (reg uint64, e0 int) {
	if ieeeExp != 0 {
		return (uint64(1) << 63) | (ieeeMant << uint(63-f64MantBits)), ieeeExp - f64Bias
	}
	reg = ieeeMant << uint(64-f64MantBits)
	lz := stdbits.LeadingZeros64(reg)
	return reg << uint(lz), -f64Bias - lz
}

func buildFloat64(sign int, ieeeExp int, ieeeMant uint64) float64 {
	bitsOut := uint64(sign)<<63 | uint64(ieeeExp)<<f64MantBits | (ieeeMant & ((uint64(1) << f64MantBits) - 1))
	return math.Float64frombits(bitsOut)
}

// WriteVF128F64 writes v in the variable-length vf128 form described in
// spec.md §4.3.3: inline one-byte forms for zero/inf/NaN and small
// magnitudes, otherwise an out-of-line form with an explicit signed
// exponent and unsigned fraction, each independently size-minimized.
func WriteVF128F64(b *mubuf.Buffer, v float64) error {
	sign := 0
	if math.Signbit(v) {
		sign = 1
	}

	switch {
	case v == 0:
		return writeLead(b, byte(sign<<6))
	case math.IsInf(v, 0):
		return writeLead(b, byte(0x30|sign<<6))
	case math.IsNaN(v):
		return writeLead(b, 0x38)
	}

	bitsV := math.Float64bits(math.Abs(v))
	ieeeExp := int((bitsV >> f64MantBits) & f64ExpMask)
	ieeeMant := bitsV & ((uint64(1) << f64MantBits) - 1)

	if ieeeExp == f64Bias || ieeeExp == f64Bias+1 {
		mask := (uint64(1) << uint(f64MantBits-4)) - 1
		if ieeeMant&mask == 0 {
			mmmm := byte(ieeeMant >> uint(f64MantBits-4))
			ee := byte(ieeeExp - f64Bias + 1)
			return writeLead(b, byte(sign<<6)|ee<<4|mmmm)
		}
	}

	if ieeeExp >= f64Bias-4 && ieeeExp <= f64Bias-1 {
		lz := f64Bias - 1 - ieeeExp
		mask := (uint64(1) << uint(f64MantBits-4)) - 1
		if ieeeMant&mask == 0 {
			top := byte(ieeeMant >> uint(f64MantBits-4))
			for mmmm := 1; mmmm <= 15; mmmm++ {
				if bitops.NibbleCLZ4(byte(mmmm)) != lz {
					continue
				}
				if byte((uint64(mmmm)<<uint(lz+1))&0xF) == top {
					return writeLead(b, byte(sign<<6)|byte(mmmm))
				}
			}
		}
	}

	reg0, e0 := renormalize64(ieeeExp, ieeeMant)
	tz := stdbits.TrailingZeros64(reg0)
	frac := reg0 >> uint(tz)
	sexp := int64(e0)

	fracLen := 0
	if frac != 1 {
		fracLen = intcodec.UintLength(frac)
		if fracLen > 15 {
			return ErrVF128Overflow
		}
	}

	// Fraction-only form: for -8 <= sexp < 0 the exponent can be folded
	// into a unary prefix (the fraction's own trailing zero count) instead
	// of written explicitly. Emit it only when it is actually shorter.
	if fracLen > 0 && sexp < 0 && sexp >= -8 {
		sh := uint(-sexp - 1)
		compFrac := frac << sh
		if compFracLen := intcodec.UintLength(compFrac); compFracLen > 0 && compFracLen <= 15 {
			if compFracLen < intcodec.IntLength(sexp)+fracLen {
				lead := byte(0x80) | byte(sign<<6) | byte(compFracLen)
				if err := writeLead(b, lead); err != nil {
					return err
				}
				return intcodec.WriteUintLE(b, compFrac)
			}
		}
	}

	expLen := intcodec.IntLength(sexp)
	if expLen > 2 {
		return ErrVF128Overflow
	}
	lead := byte(0x80) | byte(sign<<6) | byte(expLen<<4) | byte(fracLen)
	if err := writeLead(b, lead); err != nil {
		return err
	}
	if err := intcodec.WriteIntLE(b, sexp); err != nil {
		return err
	}
	if fracLen > 0 {
		return intcodec.WriteUintLE(b, frac)
	}
	return nil
}

// ReadVF128F64 reads one vf128-encoded f64.
func ReadVF128F64(b *mubuf.Buffer) (float64, error) {
	raw, n := b.ReadI8()
	if n != 1 {
		return 0, mubuf.ErrUnderflow
	}
	lead := byte(raw)
	sign := int((lead >> 6) & 0x01)

	if lead&0x80 == 0 {
		ee := (lead >> 4) & 0x03
		mmmm := lead & 0x0F
		switch ee {
		case 0:
			if mmmm == 0 {
				if sign == 1 {
					return math.Copysign(0, -1), nil
				}
				return 0, nil
			}
			lz := bitops.NibbleCLZ4(mmmm)
			ieeeExp := f64Bias - 1 - lz
			top := (uint64(mmmm) << uint(lz+1)) & 0xF
			return buildFloat64(sign, ieeeExp, top<<uint(f64MantBits-4)), nil
		case 1, 2:
			ieeeExp := f64Bias + int(ee) - 1
			return buildFloat64(sign, ieeeExp, uint64(mmmm)<<uint(f64MantBits-4)), nil
		default: // ee == 3
			if mmmm == 0 {
				if sign == 1 {
					return math.Inf(-1), nil
				}
				return math.Inf(1), nil
			}
			return math.NaN(), nil
		}
	}

	ee := (lead >> 4) & 0x03
	mmmm := lead & 0x0F
	expLen := int(ee)
	fracLen := int(mmmm)

	var frac uint64
	var sexp int64
	var err error
	if expLen == 0 {
		if fracLen == 0 {
			return 0, ErrVF128Format
		}
		frac, err = intcodec.ReadUintLE(b, fracLen)
		if err != nil {
			return 0, err
		}
		sexp = -int64(stdbits.TrailingZeros64(frac)) - 1
	} else {
		sexp, err = intcodec.ReadIntLE(b, expLen)
		if err != nil {
			return 0, err
		}
		if fracLen == 0 {
			frac = 1
		} else {
			frac, err = intcodec.ReadUintLE(b, fracLen)
			if err != nil {
				return 0, err
			}
		}
	}

	k := bitops.CLZ64(frac)
	reg1 := frac << uint(k+1)
	// k only repositions the mantissa (dropping its implicit leading one);
	// sexp already carries the true unbiased exponent.
	e0 := sexp
	ieeeExpCandidate := e0 + f64Bias

	switch {
	case ieeeExpCandidate >= 1 && ieeeExpCandidate <= f64ExpMask-1:
		return buildFloat64(sign, int(ieeeExpCandidate), reg1>>uint(64-f64MantBits)), nil
	case ieeeExpCandidate <= 0:
		shift := -ieeeExpCandidate
		if shift > f64MantBits {
			return buildFloat64(sign, 0, 0), nil
		}
		full := (uint64(1) << 63) | (reg1 >> 1)
		shifted := full >> uint(shift)
		return buildFloat64(sign, 0, shifted>>uint(64-f64MantBits)), nil
	default:
		return 0, ErrVF128Overflow
	}
}
