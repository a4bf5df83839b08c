// Package floatwire selects which float codec (vf128 or raw IEEE-754)
// the binary SVG emitter/parser uses for a given stream, per spec §6's
// "svgv"/"svgb" format distinction.
package floatwire

import (
	"github.com/scigolib/musvg/internal/floatcodec"
	"github.com/scigolib/musvg/internal/mubuf"
)

// Codec writes and reads the float values embedded in a binary SVG
// stream (lengths, coordinates, transform and viewBox values, ...).
type Codec interface {
	WriteF32(b *mubuf.Buffer, v float32) error
	ReadF32(b *mubuf.Buffer) (float32, error)
	WriteF64(b *mubuf.Buffer, v float64) error
	ReadF64(b *mubuf.Buffer) (float64, error)
}

// VF128 is the variable-length "svgv" wire codec.
type VF128 struct{}

func (VF128) WriteF32(b *mubuf.Buffer, v float32) error { return floatcodec.WriteVF128F32(b, v) }
func (VF128) ReadF32(b *mubuf.Buffer) (float32, error)  { return floatcodec.ReadVF128F32(b) }
func (VF128) WriteF64(b *mubuf.Buffer, v float64) error { return floatcodec.WriteVF128F64(b, v) }
func (VF128) ReadF64(b *mubuf.Buffer) (float64, error)  { return floatcodec.ReadVF128F64(b) }

// IEEE is the fixed-width raw-bits "svgb" wire codec.
type IEEE struct{}

func (IEEE) WriteF32(b *mubuf.Buffer, v float32) error { return floatcodec.WriteF32(b, v) }
func (IEEE) ReadF32(b *mubuf.Buffer) (float32, error)  { return floatcodec.ReadF32(b) }
func (IEEE) WriteF64(b *mubuf.Buffer, v float64) error { return floatcodec.WriteF64(b, v) }
func (IEEE) ReadF64(b *mubuf.Buffer) (float64, error)  { return floatcodec.ReadF64(b) }
