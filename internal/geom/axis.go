package geom

import "fmt"

// An Axis is one of the three coordinate axes, without sign.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the three axes in declaration order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Pos returns the positive direction along the axis.
func (a Axis) Pos() Direction {
	switch a {
	case AxisX:
		return PosX
	case AxisY:
		return PosY
	default:
		return PosZ
	}
}

// Neg returns the negative direction along the axis.
func (a Axis) Neg() Direction {
	return a.Pos().Invert()
}

// WithPolarity rebuilds the direction on this axis with the given sign.
func (a Axis) WithPolarity(p Polarity) Direction {
	if p == Pos {
		return a.Pos()
	}
	return a.Neg()
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}
