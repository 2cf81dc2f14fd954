package geom

import "fmt"

// A Direction is one of the six outward face normals of an axis-aligned
// cube. The numeric value is the rotation index (PosY=0, PosX=1, PosZ=2,
// NegY=3, NegX=4, NegZ=5). Rotation packs this index into its upper bits,
// so the ordering is part of the stored byte format and must never change.
type Direction uint8

const (
	PosY Direction = iota // up
	PosX                  // right
	PosZ                  // back
	NegY                  // down
	NegX                  // left
	NegZ                  // forward
)

// Slot aliases for the unoriented cube frame.
const (
	DirUp       = PosY
	DirRight    = PosX
	DirBackward = PosZ
	DirDown     = NegY
	DirLeft     = NegX
	DirForward  = NegZ
)

// Compass aliases.
const (
	DirNorth = NegZ
	DirWest  = NegX
	DirSouth = PosZ
	DirEast  = PosX
)

// Directions lists every Direction in canonical declaration order.
var Directions = [6]Direction{NegX, NegY, NegZ, PosX, PosY, PosZ}

// RotationOrder lists every Direction ordered by rotation index.
var RotationOrder = [6]Direction{PosY, PosX, PosZ, NegY, NegX, NegZ}

// FloodDirections orders directions for flood-fill traversal.
var FloodDirections = [6]Direction{PosY, NegY, PosX, NegX, PosZ, NegZ}

// ordinals maps rotation-index values back to canonical declaration order.
var ordinals = [6]uint8{PosY: 4, PosX: 3, PosZ: 5, NegY: 1, NegX: 0, NegZ: 2}

// The hand-fixed face adjacency of the unoriented cube, indexed by rotation
// index. Every generated table in this package ultimately derives from
// these four arrays.
var (
	dirUp    = [6]Direction{NegZ, PosY, PosY, PosZ, PosY, PosY}
	dirLeft  = [6]Direction{NegX, PosZ, NegX, NegX, NegZ, PosX}
	dirDown  = [6]Direction{PosZ, NegY, NegY, NegZ, NegY, NegY}
	dirRight = [6]Direction{PosX, NegZ, PosX, PosX, PosZ, NegX}
)

// DirectionFromByte validates and converts a stored direction byte.
// The unchecked fast path for already-validated bytes is a plain
// Direction conversion.
func DirectionFromByte(b byte) (Direction, error) {
	if b > 5 {
		return 0, fmt.Errorf("geom: direction byte %d out of range 0..5", b)
	}
	return Direction(b), nil
}

// Byte returns the direction's stored byte value.
func (d Direction) Byte() byte {
	return byte(d)
}

// RotationIndex returns the direction's position in rotation order
// (PosY=0, PosX=1, PosZ=2, NegY=3, NegX=4, NegZ=5).
func (d Direction) RotationIndex() uint8 {
	return uint8(d)
}

// Ordinal returns the direction's position in canonical declaration order
// (NegX=0, NegY=1, NegZ=2, PosX=3, PosY=4, PosZ=5).
func (d Direction) Ordinal() uint8 {
	return ordinals[d]
}

// Bit returns the direction as a single bit keyed by rotation index.
func (d Direction) Bit() uint8 {
	return 1 << d
}

// Invert returns the opposite face: NegX becomes PosX, PosY becomes NegY,
// and so on. Inversion is an involution.
func (d Direction) Invert() Direction {
	return (d + 3) % 6
}

// Axis returns the direction's axis with the sign dropped.
func (d Direction) Axis() Axis {
	return dirAxes[d]
}

var dirAxes = [6]Axis{AxisY, AxisX, AxisZ, AxisY, AxisX, AxisZ}

// Polarity returns the direction's sign along its axis.
func (d Direction) Polarity() Polarity {
	if d < 3 {
		return Pos
	}
	return Neg
}

// IsOrthogonalTo reports whether the two directions lie on different axes.
func (d Direction) IsOrthogonalTo(o Direction) bool {
	return d.Axis() != o.Axis()
}

// Flip mirrors the direction across each axis set in f.
func (d Direction) Flip(f Flip) Direction {
	switch d.Axis() {
	case AxisX:
		if f.X() {
			return d.Invert()
		}
	case AxisY:
		if f.Y() {
			return d.Invert()
		}
	default:
		if f.Z() {
			return d.Invert()
		}
	}
	return d
}

// Rotate maps the direction through r.
func (d Direction) Rotate(r Rotation) Direction {
	return r.Reface(d)
}

// Up returns the face whose normal points to the top of this face's UV
// plane on an unoriented cube.
func (d Direction) Up() Direction {
	return dirUp[d]
}

// Left returns the face whose normal points to the left of this face's UV
// plane on an unoriented cube.
func (d Direction) Left() Direction {
	return dirLeft[d]
}

// Down returns the face whose normal points to the bottom of this face's
// UV plane on an unoriented cube.
func (d Direction) Down() Direction {
	return dirDown[d]
}

// Right returns the face whose normal points to the right of this face's
// UV plane on an unoriented cube.
func (d Direction) Right() Direction {
	return dirRight[d]
}

// UpAtAngle returns the face that occupies the UV-up slot after the face
// is turned counter-clockwise by angle quarter turns.
func (d Direction) UpAtAngle(angle int) Direction {
	switch angle & 3 {
	case 0:
		return d.Up()
	case 1:
		return d.Left()
	case 2:
		return d.Down()
	default:
		return d.Right()
	}
}

// LeftAtAngle returns the face occupying the UV-left slot at angle.
func (d Direction) LeftAtAngle(angle int) Direction {
	switch angle & 3 {
	case 0:
		return d.Left()
	case 1:
		return d.Down()
	case 2:
		return d.Right()
	default:
		return d.Up()
	}
}

// DownAtAngle returns the face occupying the UV-down slot at angle.
func (d Direction) DownAtAngle(angle int) Direction {
	switch angle & 3 {
	case 0:
		return d.Down()
	case 1:
		return d.Right()
	case 2:
		return d.Up()
	default:
		return d.Left()
	}
}

// RightAtAngle returns the face occupying the UV-right slot at angle.
func (d Direction) RightAtAngle(angle int) Direction {
	switch angle & 3 {
	case 0:
		return d.Right()
	case 1:
		return d.Up()
	case 2:
		return d.Left()
	default:
		return d.Down()
	}
}

// Unit returns the direction's unit vector components.
func (d Direction) Unit() (x, y, z int) {
	switch d {
	case PosX:
		return 1, 0, 0
	case PosY:
		return 0, 1, 0
	case PosZ:
		return 0, 0, 1
	case NegX:
		return -1, 0, 0
	case NegY:
		return 0, -1, 0
	default:
		return 0, 0, -1
	}
}

// UnitVec returns the direction's unit vector in any coordinate type.
func UnitVec[T Coord](d Direction) (x, y, z T) {
	xi, yi, zi := d.Unit()
	return T(xi), T(yi), T(zi)
}

func (d Direction) String() string {
	switch d {
	case PosY:
		return "PosY"
	case PosX:
		return "PosX"
	case PosZ:
		return "PosZ"
	case NegY:
		return "NegY"
	case NegX:
		return "NegX"
	case NegZ:
		return "NegZ"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
