package geom

import "fmt"

// A Rotation is one of the 24 pure rotations of an axis-aligned cube,
// parameterized by which world direction the cube's top face points at and
// how many counter-clockwise quarter turns it has made around that
// direction. The byte layout is [up:3][angle:2] with up in rotation index
// order; values 0..23 are valid. The layout is part of the stored
// Orientation byte format and must never change.
type Rotation uint8

// Unrotated is the identity: up stays PosY with no turn.
const Unrotated Rotation = 0

// Generators for the three axis-aligned quarter turns, all
// counter-clockwise when viewed from the positive end of the axis.
const (
	RotateX Rotation = Rotation(uint8(PosZ) << 2)
	RotateY Rotation = Rotation(uint8(PosY)<<2 | 1)
	RotateZ Rotation = Rotation(uint8(NegX)<<2 | 1)
)

const rotationCount = 24

// NewRotation packs an up direction and a quarter-turn angle.
func NewRotation(up Direction, angle int) Rotation {
	return Rotation(uint8(angle&3) | uint8(up)<<2)
}

// RotationFromByte validates and converts a stored rotation byte. The
// unchecked fast path for already-validated bytes is a plain Rotation
// conversion.
func RotationFromByte(b byte) (Rotation, error) {
	if b >= rotationCount {
		return 0, fmt.Errorf("geom: rotation byte %d out of range 0..23", b)
	}
	return Rotation(b), nil
}

// Byte returns the rotation's stored byte value.
func (r Rotation) Byte() byte {
	return byte(r)
}

// Up returns the world direction the cube's top face points at.
func (r Rotation) Up() Direction {
	return Direction(r >> 2)
}

// Angle returns the quarter-turn count, 0..3.
func (r Rotation) Angle() int {
	return int(r & 3)
}

// WithUp keeps the angle and replaces the up direction.
func (r Rotation) WithUp(up Direction) Rotation {
	return NewRotation(up, r.Angle())
}

// WithAngle keeps the up direction and replaces the angle.
func (r Rotation) WithAngle(angle int) Rotation {
	return NewRotation(r.Up(), angle)
}

// Down returns the world direction the cube's bottom face points at.
func (r Rotation) Down() Direction {
	return r.Up().Invert()
}

// Left returns the world direction the cube's left face points at.
func (r Rotation) Left() Direction {
	return r.Reface(NegX)
}

// Right returns the world direction the cube's right face points at.
func (r Rotation) Right() Direction {
	return r.Reface(PosX)
}

// Forward returns the world direction the cube's front face points at.
func (r Rotation) Forward() Direction {
	return r.Reface(NegZ)
}

// Backward returns the world direction the cube's back face points at.
func (r Rotation) Backward() Direction {
	return r.Reface(PosZ)
}

// Reface maps a direction forward through the rotation.
func (r Rotation) Reface(d Direction) Direction {
	return refaceTable[r][d]
}

// SourceFace tells which direction refaces to destination. It is the
// inverse of Reface: r.SourceFace(r.Reface(d)) == d for every d.
func (r Rotation) SourceFace(destination Direction) Direction {
	return sourceFaceTable[r][destination]
}

// RotationFromUpAndForward reconstructs the unique rotation with the given
// up and forward directions. It reports false for the six degenerate pairs
// where up and forward share an axis.
func RotationFromUpAndForward(up, forward Direction) (Rotation, bool) {
	r := upForwardTable[up][forward]
	if r < 0 {
		return 0, false
	}
	return Rotation(r), true
}

// Reorient rotates this rotation by another: the result maps the cube the
// way other maps the cube r already mapped. This is the group operation.
func (r Rotation) Reorient(other Rotation) Rotation {
	up := other.Reface(r.Up())
	fwd := other.Reface(r.Forward())
	rot, ok := RotationFromUpAndForward(up, fwd)
	if !ok {
		panic("geom: Reorient produced a non-orthogonal up/forward pair")
	}
	return rot
}

// Deorient rotates this rotation by the inverse of another, undoing a
// previous Reorient by the same rotation.
func (r Rotation) Deorient(other Rotation) Rotation {
	up := other.SourceFace(r.Up())
	fwd := other.SourceFace(r.Forward())
	rot, ok := RotationFromUpAndForward(up, fwd)
	if !ok {
		panic("geom: Deorient produced a non-orthogonal up/forward pair")
	}
	return rot
}

// Invert returns the rotation that reorients this one back to Unrotated.
func (r Rotation) Invert() Rotation {
	return Unrotated.Deorient(r)
}

// Cycle advances through the 24 packed rotation values by offset, wrapping
// with the Euclidean remainder. The order is the packed byte order; it has
// no further geometric meaning.
func (r Rotation) Cycle(offset int) Rotation {
	return Rotation(wrapIndex(int(r), offset, rotationCount))
}

// Angles returns the four-step cycle generated by repeatedly applying r:
// identity, r, r twice, r three times.
func (r Rotation) Angles() [4]Rotation {
	a2 := r.Reorient(r)
	a3 := a2.Reorient(r)
	return [4]Rotation{Unrotated, r, a2, a3}
}

// CornerAngles returns the three-step cycle generated by a corner
// rotation: identity, r, r twice. Corner stabilizers have order 3.
func (r Rotation) CornerAngles() [3]Rotation {
	return [3]Rotation{Unrotated, r, r.Reorient(r)}
}

// FaceRotation returns the rotation that turns the cube counter-clockwise
// around the given face by angle quarter turns.
func FaceRotation(face Direction, angle int) Rotation {
	return faceRotations[face][angle&3]
}

// CornerRotation returns the rotation that twists the cube around the
// corner nearest to (x, y, z) by angle thirds of a turn. Coordinates are
// only compared against zero: n <= 0 selects the negative side.
func CornerRotation(x, y, z, angle int) Rotation {
	return cornerRotations[cornerSide(y)][cornerSide(z)][cornerSide(x)][wrapIndex(0, angle, 3)]
}

func cornerSide(n int) int {
	if n <= 0 {
		return 0
	}
	return 1
}

// RotatedX applies angle quarter turns around the X axis.
func (r Rotation) RotatedX(angle int) Rotation {
	return r.Reorient(faceRotations[PosX][angle&3])
}

// RotatedY applies angle quarter turns around the Y axis.
func (r Rotation) RotatedY(angle int) Rotation {
	return r.Reorient(faceRotations[PosY][angle&3])
}

// RotatedZ applies angle quarter turns around the Z axis.
func (r Rotation) RotatedZ(angle int) Rotation {
	return r.Reorient(faceRotations[PosZ][angle&3])
}

// RotatedFace turns the rotation counter-clockwise around face by angle
// quarter turns. Negative angles turn clockwise.
func (r Rotation) RotatedFace(face Direction, angle int) Rotation {
	return r.Reorient(FaceRotation(face, angle))
}

// RotatedCorner twists the rotation around the corner nearest (x, y, z).
func (r Rotation) RotatedCorner(x, y, z, angle int) Rotation {
	return r.Reorient(CornerRotation(x, y, z, angle))
}

// FaceAngle returns the UV angle, 0..3, of the cube face that ended up
// oriented toward worldFace.
func (r Rotation) FaceAngle(worldFace Direction) int {
	return int(faceAngleTable[r][worldFace])
}

// Faces returns the rotated cube's up/right/forward frame.
func (r Rotation) Faces() Faces {
	return Faces{up: r.Up(), right: r.Right(), forward: r.Forward()}
}

// WithFlip combines the rotation with a flip into an Orientation.
func (r Rotation) WithFlip(f Flip) Orientation {
	return NewOrientation(r, f)
}

// Orientation returns the rotation as an Orientation with no flip.
func (r Rotation) Orientation() Orientation {
	return NewOrientation(r, FlipNone)
}

// RotateCoord rotates a coordinate triple. The result is consistent with
// Reface on unit face vectors.
func RotateCoord[T Coord](r Rotation, x, y, z T) (T, T, T) {
	in := [3]T{x, y, z}
	var out [3]T
	for a, m := range rotateCoordTable[r] {
		v := in[a]
		if m.neg {
			v = -v
		}
		out[m.axis] = v
	}
	return out[0], out[1], out[2]
}

func (r Rotation) String() string {
	return fmt.Sprintf("Rotation(up=%s,forward=%s,angle=%d)", r.Up(), r.Forward(), r.Angle())
}
