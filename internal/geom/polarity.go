package geom

import "fmt"

// A Polarity is the sign of a coordinate along an axis.
type Polarity uint8

const (
	Neg Polarity = iota
	Pos
)

// X returns the direction on the X axis with this sign.
func (p Polarity) X() Direction {
	if p == Pos {
		return PosX
	}
	return NegX
}

// Y returns the direction on the Y axis with this sign.
func (p Polarity) Y() Direction {
	if p == Pos {
		return PosY
	}
	return NegY
}

// Z returns the direction on the Z axis with this sign.
func (p Polarity) Z() Direction {
	if p == Pos {
		return PosZ
	}
	return NegZ
}

// WithAxis rebuilds the direction with this sign on the given axis.
func (p Polarity) WithAxis(a Axis) Direction {
	return a.WithPolarity(p)
}

func (p Polarity) IsNeg() bool { return p == Neg }
func (p Polarity) IsPos() bool { return p == Pos }

// Invert returns the opposite sign.
func (p Polarity) Invert() Polarity {
	return p ^ 1
}

func (p Polarity) String() string {
	switch p {
	case Neg:
		return "Neg"
	case Pos:
		return "Pos"
	}
	return fmt.Sprintf("Polarity(%d)", uint8(p))
}
