package geom

import (
	"fmt"
	"strings"
)

// A Flip is a reflection across a subset of the coordinate axes, stored in
// the low three bits of a byte: bit0=X, bit1=Y, bit2=Z. This bit contract
// is part of the stored Orientation byte format and must never change.
//
// Flips compose by XOR: applying the same flip twice yields FlipNone, and
// composition is commutative and associative.
type Flip uint8

const (
	FlipNone Flip = 0b000
	FlipX    Flip = 0b001
	FlipY    Flip = 0b010
	FlipXY   Flip = 0b011
	FlipZ    Flip = 0b100
	FlipXZ   Flip = 0b101
	FlipYZ   Flip = 0b110
	FlipXYZ  Flip = 0b111
)

// FlipAll mirrors every axis.
const FlipAll = FlipXYZ

// NewFlip builds a Flip from per-axis mirror switches.
func NewFlip(x, y, z bool) Flip {
	var f Flip
	if x {
		f |= FlipX
	}
	if y {
		f |= FlipY
	}
	if z {
		f |= FlipZ
	}
	return f
}

// FlipFromByte validates and converts a stored flip byte. The unchecked
// fast path for already-validated bytes is a plain Flip conversion.
func FlipFromByte(b byte) (Flip, error) {
	if b > 7 {
		return 0, fmt.Errorf("geom: flip byte %d out of range 0..7", b)
	}
	return Flip(b), nil
}

// FlipFromByteWrapping keeps only the low three bits of b.
func FlipFromByteWrapping(b byte) Flip {
	return Flip(b & 0b111)
}

// Byte returns the flip's stored byte value.
func (f Flip) Byte() byte {
	return byte(f)
}

func (f Flip) X() bool { return f&FlipX != 0 }
func (f Flip) Y() bool { return f&FlipY != 0 }
func (f Flip) Z() bool { return f&FlipZ != 0 }

// WithX returns the flip with the X mirror set to v.
func (f Flip) WithX(v bool) Flip {
	if v {
		return f | FlipX
	}
	return f &^ FlipX
}

// WithY returns the flip with the Y mirror set to v.
func (f Flip) WithY(v bool) Flip {
	if v {
		return f | FlipY
	}
	return f &^ FlipY
}

// WithZ returns the flip with the Z mirror set to v.
func (f Flip) WithZ(v bool) Flip {
	if v {
		return f | FlipZ
	}
	return f &^ FlipZ
}

func (f Flip) And(g Flip) Flip { return f & g }
func (f Flip) Or(g Flip) Flip  { return f | g }

// Xor composes two flips: mirrors present in exactly one operand survive.
// Xor is the group operation of the flip group.
func (f Flip) Xor(g Flip) Flip { return f ^ g }

// Invert mirrors every axis the flip leaves alone and vice versa.
func (f Flip) Invert() Flip {
	return f ^ FlipAll
}

// Parity reports whether the flip reverses winding order: true when an odd
// number of axes are mirrored. Mesh code uses this to reverse indices for
// backface culling.
func (f Flip) Parity() bool {
	return f.X() != (f.Y() != f.Z())
}

// IsFlipped reports whether the face lies on a mirrored axis.
func (f Flip) IsFlipped(face Direction) bool {
	switch face.Axis() {
	case AxisX:
		return f.X()
	case AxisY:
		return f.Y()
	default:
		return f.Z()
	}
}

// FlipCoord mirrors each component of a coordinate whose axis is set in f.
func FlipCoord[T Coord](f Flip, x, y, z T) (T, T, T) {
	if f.X() {
		x = -x
	}
	if f.Y() {
		y = -y
	}
	if f.Z() {
		z = -z
	}
	return x, y, z
}

func (f Flip) String() string {
	if f == FlipNone {
		return "Flip()"
	}
	var b strings.Builder
	b.WriteString("Flip(")
	sep := false
	for _, part := range [3]struct {
		set  bool
		name string
	}{{f.X(), "X"}, {f.Y(), "Y"}, {f.Z(), "Z"}} {
		if !part.set {
			continue
		}
		if sep {
			b.WriteByte('|')
		}
		b.WriteString(part.name)
		sep = true
	}
	b.WriteByte(')')
	return b.String()
}
