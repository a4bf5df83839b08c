package floatcodec

import (
	"errors"
	"math"
	stdbits "math/bits"

	"github.com/scigolib/musvg/internal/bitops"
	"github.com/scigolib/musvg/internal/intcodec"
	"github.com/scigolib/musvg/internal/mubuf"
)

// ErrBERRealBase is returned when the binary form's base field is not 2,
// or the lead byte is neither a recognized special form nor a binary
// form.
var ErrBERRealBase = errors.New("ber real: base must be 2")

// ErrBERRealExpCode is returned when the exponent-bytes code is the
// reserved 2 or 3 (meaning "length of exponent follows in an extra
// octet" or higher, which this codec does not support).
var ErrBERRealExpCode = errors.New("ber real: exponent-bytes code 2/3 reserved")

// ErrBERRealOverflow is returned when a decoded exponent or mantissa
// falls outside the target format's field width, or the supplied
// content length is inconsistent with the exponent code.
var ErrBERRealOverflow = errors.New("ber real: decoded field out of range")

const (
	berRealPosInf  = 0x40
	berRealNegInf  = 0x41
	berRealNegZero = 0x42
	berRealNaN     = 0x43
)

const (
	f64Bias     = 1023
	f64MantBits = 52
	f64ExpMask  = (1 << 11) - 1

	f32Bias     = 127
	f32MantBits = 23
	f32ExpMask  = (1 << 8) - 1
)

// BERRealLength64 returns the total content length (lead byte + exponent
// + fraction) that WriteBERReal64 would emit for v.
func BERRealLength64(v float64) (int, error) {
	if isSpecialReal(v) {
		return 1, nil
	}
	_, sexp, frac, err := planReal64(v)
	if err != nil {
		return 0, err
	}
	expLen := intcodec.IntLength(sexp)
	if expLen > 2 {
		return 0, ErrBERRealOverflow
	}
	fracLen := 0
	if frac != 0 {
		fracLen = intcodec.UintLength(frac)
	}
	return 1 + expLen + fracLen, nil
}

func isSpecialReal(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v) || (v == 0 && math.Signbit(v))
}

// planReal64 decomposes a finite, non-negative-zero v into the sign bit
// and the (sexp, frac) pair per spec.md §4.3.2: frac is the IEEE mantissa
// with its implicit leading one reattached and trailing zero bits
// stripped so its own lowest set bit sits at bit 0; sexp is the exponent
// relative to that lowest set bit rather than the highest.
func planReal64(v float64) (sign int, sexp int64, frac uint64, err error) {
	if v == 0 {
		return signOf(v), 0, 0, nil
	}
	bits := math.Float64bits(math.Abs(v))
	ieeeExp := int64((bits >> f64MantBits) & f64ExpMask)
	ieeeMant := bits & ((uint64(1) << f64MantBits) - 1)
	fullMant := (uint64(1) << f64MantBits) | ieeeMant
	tz := stdbits.TrailingZeros64(fullMant)
	frac = fullMant >> uint(tz)
	k := int64(64 - f64MantBits - 1 + tz) // clz64(frac), derived without calling it on frac==0
	sexp = ieeeExp - f64Bias - 63 + k
	return signOf(v), sexp, frac, nil
}

func signOf(v float64) int {
	if math.Signbit(v) {
		return 1
	}
	return 0
}

// WriteBERReal64 writes v's ASN.1 BER real content (lead byte, signed
// exponent, unsigned fraction), not including any outer TLV framing.
func WriteBERReal64(b *mubuf.Buffer, v float64) error {
	switch {
	case math.IsInf(v, 1):
		return writeLead(b, berRealPosInf)
	case math.IsInf(v, -1):
		return writeLead(b, berRealNegInf)
	case math.IsNaN(v):
		return writeLead(b, berRealNaN)
	case v == 0 && math.Signbit(v):
		return writeLead(b, berRealNegZero)
	}

	sign, sexp, frac, err := planReal64(v)
	if err != nil {
		return err
	}
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
	return intcodec.WriteUint(b, frac)
}

func writeLead(b *mubuf.Buffer, lead byte) error {
	if b.WriteI8(int8(lead)) != 1 {
		return mubuf.ErrOverflow
	}
	return nil
}

// ReadBERReal64 reads length content bytes of an ASN.1 BER real value
// (the caller supplies length from the enclosing TLV header, since the
// fraction's byte count is derived by subtraction, not self-delimited).
func ReadBERReal64(b *mubuf.Buffer, length int) (float64, error) {
	raw, n := b.ReadI8()
	if n != 1 {
		return 0, mubuf.ErrUnderflow
	}
	lead := byte(raw)
	switch lead {
	case berRealPosInf:
		return math.Inf(1), nil
	case berRealNegInf:
		return math.Inf(-1), nil
	case berRealNegZero:
		return math.Copysign(0, -1), nil
	case berRealNaN:
		return math.NaN(), nil
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
	var frac uint64
	if fracLen > 0 {
		frac, err = intcodec.ReadUint(b, fracLen)
		if err != nil {
			return 0, err
		}
	}

	if frac == 0 {
		if sexp != 0 {
			return 0, ErrBERRealOverflow
		}
		v := 0.0
		if sign == 1 {
			v = math.Copysign(0, -1)
		}
		return v, nil
	}

	k := bitops.CLZ64(frac)
	ieeeExp := f64Bias + 63 + sexp - int64(k)
	ieeeMant := (frac << uint(k+1)) >> uint(64-f64MantBits)
	if ieeeExp < 0 || ieeeExp > f64ExpMask || ieeeMant > (uint64(1)<<f64MantBits)-1 {
		return 0, ErrBERRealOverflow
	}
	outBits := uint64(sign)<<63 | uint64(ieeeExp)<<f64MantBits | ieeeMant
	return math.Float64frombits(outBits), nil
}
