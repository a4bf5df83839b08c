package floatcodec

import (
	"math"
	stdbits "math/bits"

	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/intcodec"
	"github.com/scigolib/musvg/internal/mubuf"
)

// renormalize32 is the f32 counterpart of renormalize64.
func renormalize32(ieeeExp int, ieeeMant uint32) (reg uint32, e0 int) {
	if ieeeExp != 0 {
		return (uint32(1) << 31) | (ieeeMant << uint(31-f32MantBits)), ieeeExp - f32Bias
	}
	reg = ieeeMant << uint(32-f32MantBits)
	lz := stdbits.LeadingZeros32(reg)
	return reg << uint(lz), -f32Bias - lz
}

func buildFloat32(sign int, ieeeExp int, ieeeMant uint32) float32 {
	bitsOut := uint32(sign)<<31 | uint32(ieeeExp)<<f32MantBits | (ieeeMant & ((uint32(1) << f32MantBits) - 1))
	return math.Float32frombits(bitsOut)
}

// WriteVF128F32 is the f32 counterpart of WriteVF128F64.
func WriteVF128F32(b *mubuf.Buffer, v float32) error {
	sign := 0
	if math.Signbit(float64(v)) {
		sign = 1
	}

	switch {
	case v == 0:
		return writeLead(b, byte(sign<<6))
	case math.IsInf(float64(v), 0):
		return writeLead(b, byte(0x30|sign<<6))
	case v != v:
		return writeLead(b, 0x38)
	}

	bitsV := math.Float32bits(float32(math.Abs(float64(v))))
	ieeeExp := int((bitsV >> f32MantBits) & f32ExpMask)
	ieeeMant := bitsV & ((uint32(1) << f32MantBits) - 1)

	if ieeeExp == f32Bias || ieeeExp == f32Bias+1 {
		mask := (uint32(1) << uint(f32MantBits-4)) - 1
		if ieeeMant&mask == 0 {
			mmmm := byte(ieeeMant >> uint(f32MantBits-4))
			ee := byte(ieeeExp - f32Bias + 1)
			return writeLead(b, byte(sign<<6)|ee<<4|mmmm)
		}
	}

	if ieeeExp >= f32Bias-4 && ieeeExp <= f32Bias-1 {
		lz := f32Bias - 1 - ieeeExp
		mask := (uint32(1) << uint(f32MantBits-4)) - 1
		if ieeeMant&mask == 0 {
			top := byte(ieeeMant >> uint(f32MantBits-4))
			for mmmm := 1; mmmm <= 15; mmmm++ {
				if bitops.NibbleCLZ4(byte(mmmm)) != lz {
					continue
				}
				if byte((uint32(mmmm)<<uint(lz+1))&0xF) == top {
					return writeLead(b, byte(sign<<6)|byte(mmmm))
				}
			}
		}
	}

	reg0, e0 := renormalize32(ieeeExp, ieeeMant)
	tz := stdbits.TrailingZeros32(reg0)
	frac := reg0 >> uint(tz)
	sexp := int64(e0)

	fracLen := 0
	if frac != 1 {
		fracLen = intcodec.UintLength(uint64(frac))
		if fracLen > 15 {
			return ErrVF128Overflow
		}
	}

	// Fraction-only form: for -8 <= sexp < 0 the exponent can be folded
	// into a unary prefix (the fraction's own trailing zero count) instead
	// of written explicitly. Emit it only when it is actually shorter.
	if fracLen > 0 && sexp < 0 && sexp >= -8 {
		sh := uint(-sexp - 1)
		compFrac := uint64(frac) << sh
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
		return intcodec.WriteUintLE(b, uint64(frac))
	}
	return nil
}

// ReadVF128F32 is the f32 counterpart of ReadVF128F64.
func ReadVF128F32(b *mubuf.Buffer) (float32, error) {
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
					return float32(math.Copysign(0, -1)), nil
				}
				return 0, nil
			}
			lz := bitops.NibbleCLZ4(mmmm)
			ieeeExp := f32Bias - 1 - lz
			top := (uint32(mmmm) << uint(lz+1)) & 0xF
			return buildFloat32(sign, ieeeExp, top<<uint(f32MantBits-4)), nil
		case 1, 2:
			ieeeExp := f32Bias + int(ee) - 1
			return buildFloat32(sign, ieeeExp, uint32(mmmm)<<uint(f32MantBits-4)), nil
		default:
			if mmmm == 0 {
				if sign == 1 {
					return float32(math.Inf(-1)), nil
				}
				return float32(math.Inf(1)), nil
			}
			return float32(math.NaN()), nil
		}
	}

	ee := (lead >> 4) & 0x03
	mmmm := lead & 0x0F
	expLen := int(ee)
	fracLen := int(mmmm)

	var frac32 uint32
	var sexp int64
	var err error
	if expLen == 0 {
		if fracLen == 0 {
			return 0, ErrVF128Format
		}
		frac64, ferr := intcodec.ReadUintLE(b, fracLen)
		if ferr != nil {
			return 0, ferr
		}
		frac32 = uint32(frac64)
		sexp = -int64(stdbits.TrailingZeros32(frac32)) - 1
	} else {
		sexp, err = intcodec.ReadIntLE(b, expLen)
		if err != nil {
			return 0, err
		}
		if fracLen == 0 {
			frac32 = 1
		} else {
			frac64, ferr := intcodec.ReadUintLE(b, fracLen)
			if ferr != nil {
				return 0, ferr
			}
			frac32 = uint32(frac64)
		}
	}

	k := bitops.CLZ32(frac32)
	reg1 := frac32 << uint(k+1)
	e0 := sexp
	ieeeExpCandidate := e0 + f32Bias

	switch {
	case ieeeExpCandidate >= 1 && ieeeExpCandidate <= f32ExpMask-1:
		return buildFloat32(sign, int(ieeeExpCandidate), reg1>>uint(32-f32MantBits)), nil
	case ieeeExpCandidate <= 0:
		shift := -ieeeExpCandidate
		if shift > f32MantBits {
			return buildFloat32(sign, 0, 0), nil
		}
		full := (uint32(1) << 31) | (reg1 >> 1)
		shifted := full >> uint(shift)
		return buildFloat32(sign, 0, shifted>>uint(32-f32MantBits)), nil
	default:
		return 0, ErrVF128Overflow
	}
}
