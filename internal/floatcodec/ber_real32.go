package floatcodec

import (
	"math"
	stdbits "math/bits"

	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/intcodec"
	"github.com/scigolib/musvg/internal/mubuf"
)

// BERRealLength32 returns the total content length WriteBERReal32 would
// emit for v.
func BERRealLength32(v float32) (int, error) {
	if isSpecialReal(float64(v)) {
		return 1, nil
	}
	_, sexp, frac := planReal32(v)
	expLen := intcodec.IntLength(sexp)
	if expLen > 2 {
		return 0, ErrBERRealOverflow
	}
	fracLen := 0
	if frac != 0 {
		fracLen = intcodec.UintLength(uint64(frac))
	}
	return 1 + expLen + fracLen, nil
}

func planReal32(v float32) (sign int, sexp int64, frac uint32) {
	if v == 0 {
		return signOf(float64(v)), 0, 0
	}
	bits := math.Float32bits(float32(math.Abs(float64(v))))
	ieeeExp := int64((bits >> f32MantBits) & f32ExpMask)
	ieeeMant := bits & ((uint32(1) << f32MantBits) - 1)
	fullMant := (uint32(1) << f32MantBits) | ieeeMant
	tz := stdbits.TrailingZeros32(fullMant)
	frac = fullMant >> uint(tz)
	k := int64(32 - f32MantBits - 1 + tz)
	sexp = ieeeExp - f32Bias - 31 + k
	return signOf(float64(v)), sexp, frac
}

// WriteBERReal32 writes v's ASN.1 BER real content for single precision.
func WriteBERReal32(b *mubuf.Buffer, v float32) error {
	switch {
	case math.IsInf(float64(v), 1):
		return writeLead(b, berRealPosInf)
	case math.IsInf(float64(v), -1):
		return writeLead(b, berRealNegInf)
	case v != v:
		return writeLead(b, berRealNaN)
	case v == 0 && math.Signbit(float64(v)):
		return writeLead(b, berRealNegZero)
	}

	sign, sexp, frac := planReal32(v)
	expLen := intcodec.IntLength(sexp)
	if expLen > 2 {
		return ErrBERRealOverflow
	}
	lead := byte(0x80 | (sign << 6) | (expLen - 1))
	if err := writeLead(b, lead); err != nil {
		return err
	}
	if err := intcodec.WriteInt(b, sexp); err != nil {
		return err
	}
	if frac == 0 {
		return nil
	}
	return intcodec.WriteUint(b, uint64(frac))
}

// ReadBERReal32 reads length content bytes of a single-precision ASN.1
// BER real value.
func ReadBERReal32(b *mubuf.Buffer, length int) (float32, error) {
	raw, n := b.ReadI8()
	if n != 1 {
		return 0, mubuf.ErrUnderflow
	}
	lead := byte(raw)
	switch lead {
	case berRealPosInf:
		return float32(math.Inf(1)), nil
	case berRealNegInf:
		return float32(math.Inf(-1)), nil
	case berRealNegZero:
		return float32(math.Copysign(0, -1)), nil
	case berRealNaN:
		return float32(math.NaN()), nil
	}
	if lead&0x80 == 0 {
		return 0, ErrBERRealBase
	}
	sign := int((lead >> 6) & 0x01)
	base := (lead >> 4) & 0x03
	expCode := lead & 0x03
	if base != 0 {
		return 0, ErrBERRealBase
	}
	if expCode >= 2 {
		return 0, ErrBERRealExpCode
	}
	expLen := int(expCode) + 1
	sexp, err := intcodec.ReadInt(b, expLen)
	if err != nil {
		return 0, err
	}
	fracLen := length - 1 - expLen
	if fracLen < 0 {
		return 0, ErrBERRealOverflow
	}
	var frac64 uint64
	if fracLen > 0 {
		frac64, err = intcodec.ReadUint(b, fracLen)
		if err != nil {
			return 0, err
		}
	}
	frac := uint32(frac64)

	if frac == 0 {
		if sexp != 0 {
			return 0, ErrBERRealOverflow
		}
		v := float32(0.0)
		if sign == 1 {
			v = float32(math.Copysign(0, -1))
		}
		return v, nil
	}

	k := bitops.CLZ32(frac)
	ieeeExp := f32Bias + 31 + sexp - int64(k)
	ieeeMant := (frac << uint(k+1)) >> uint(32-f32MantBits)
	if ieeeExp < 0 || ieeeExp > f32ExpMask || ieeeMant > (uint32(1)<<f32MantBits)-1 {
		return 0, ErrBERRealOverflow
	}
	outBits := uint32(sign)<<31 | uint32(ieeeExp)<<f32MantBits | ieeeMant
	return math.Float32frombits(outBits), nil
}
