package geom

import "fmt"

// A Cardinal is a compass direction on the horizontal plane, ordered
// counter-clockwise from North so the numeric value doubles as a
// quarter-turn angle.
type Cardinal uint8

const (
	North Cardinal = iota // -Z
	West                  // -X
	South                 // +Z
	East                  // +X
)

// Cardinals lists the four cardinals in angle order.
var Cardinals = [4]Cardinal{North, West, South, East}

// Flood orders for 2D flood-fill traversal, named by the preferred
// quadrant: opposite pairs first, then the tie-break sides.
var (
	FloodNorthEast = [4]Cardinal{North, South, East, West}
	FloodNorthWest = [4]Cardinal{North, South, West, East}
	FloodSouthEast = [4]Cardinal{South, North, East, West}
	FloodSouthWest = [4]Cardinal{South, North, West, East}
)

// CardinalAtAngle returns the cardinal angle quarter turns
// counter-clockwise from North.
func CardinalAtAngle(angle int) Cardinal {
	return Cardinal(angle & 3)
}

// Rotate turns the cardinal counter-clockwise by angle quarter turns.
func (c Cardinal) Rotate(angle int) Cardinal {
	return Cardinal((int(c) + angle) & 3)
}

// Invert returns the opposite compass direction.
func (c Cardinal) Invert() Cardinal {
	return (c + 2) & 3
}

// Angle returns the cardinal's counter-clockwise quarter-turn count from
// North.
func (c Cardinal) Angle() int {
	return int(c)
}

// Bit returns the cardinal as a single bit keyed by its angle.
func (c Cardinal) Bit() uint8 {
	return 1 << c
}

// Direction lifts the cardinal onto the cube face sharing its world axis.
func (c Cardinal) Direction() Direction {
	switch c {
	case North:
		return NegZ
	case West:
		return NegX
	case South:
		return PosZ
	default:
		return PosX
	}
}

// Unit2 returns the cardinal's unit vector on the XZ plane as (x, z),
// with North at -z.
func Unit2[T Coord](c Cardinal) (x, z T) {
	switch c {
	case North:
		return 0, -1
	case West:
		return -1, 0
	case South:
		return 0, 1
	default:
		return 1, 0
	}
}

// Unit3 returns the cardinal's unit vector in 3D, with y always zero.
func Unit3[T Coord](c Cardinal) (x, y, z T) {
	x, z = Unit2[T](c)
	return x, 0, z
}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	case East:
		return "East"
	}
	return fmt.Sprintf("Cardinal(%d)", uint8(c))
}
