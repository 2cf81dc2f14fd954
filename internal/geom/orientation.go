package geom

import "fmt"

// An Orientation is a Rotation followed by a Flip, packed into one byte:
// [rotation:5][flip:3] with flip in the low bits. Values 0..191 are valid.
// This packing format is permanent: changing it, the flip bit contract, or
// the direction rotation index order breaks every stored orientation byte.
//
// The 192 encodings cover the 48-element signed-permutation group four
// times over; Canonicalize picks one representative per class.
type Orientation uint8

// Unoriented is the identity: no rotation, no flip.
const Unoriented Orientation = 0

const orientationCount = 192

// Orientation generators for the three axis-aligned quarter turns.
const (
	OrientRotateX = Orientation(uint8(RotateX) << 3)
	OrientRotateY = Orientation(uint8(RotateY) << 3)
	OrientRotateZ = Orientation(uint8(RotateZ) << 3)
)

// NewOrientation packs a rotation and a flip.
func NewOrientation(r Rotation, f Flip) Orientation {
	return Orientation(uint8(f) | uint8(r)<<3)
}

// OrientationFromByte validates and converts a stored orientation byte.
// The unchecked fast path for already-validated bytes is a plain
// Orientation conversion.
func OrientationFromByte(b byte) (Orientation, error) {
	if b >= orientationCount {
		return 0, fmt.Errorf("geom: orientation byte %d out of range 0..191", b)
	}
	return Orientation(b), nil
}

// OrientationFromByteWrapping wraps b into the valid range.
func OrientationFromByteWrapping(b byte) Orientation {
	return Orientation(b % orientationCount)
}

// Byte returns the orientation's stored byte value.
func (o Orientation) Byte() byte {
	return byte(o)
}

// Flip returns the reflection component.
func (o Orientation) Flip() Flip {
	return Flip(o & 0b111)
}

// Rotation returns the rotation component.
func (o Orientation) Rotation() Rotation {
	return Rotation(o >> 3)
}

// WithFlip keeps the rotation and replaces the flip.
func (o Orientation) WithFlip(f Flip) Orientation {
	return Orientation(o&^0b111) | Orientation(f)
}

// WithRotation keeps the flip and replaces the rotation.
func (o Orientation) WithRotation(r Rotation) Orientation {
	return Orientation(o&0b111) | Orientation(uint8(r)<<3)
}

// WithUp keeps the flip and angle and replaces the rotation's up.
func (o Orientation) WithUp(up Direction) Orientation {
	return o.WithRotation(o.Rotation().WithUp(up))
}

// WithAngle keeps the flip and up and replaces the rotation's angle.
func (o Orientation) WithAngle(angle int) Orientation {
	return o.WithRotation(o.Rotation().WithAngle(angle))
}

// Reface maps a direction through the orientation: rotate, then flip.
func (o Orientation) Reface(face Direction) Direction {
	return o.Rotation().Reface(face).Flip(o.Flip())
}

// SourceFace tells which direction the orientation maps to face. It
// reflects the query first and then un-rotates, so it stays the exact
// inverse of Reface.
func (o Orientation) SourceFace(face Direction) Direction {
	return o.Rotation().SourceFace(face.Flip(o.Flip()))
}

// Up returns where PosY ends up under the orientation.
func (o Orientation) Up() Direction { return o.Reface(PosY) }

// Down returns where NegY ends up under the orientation.
func (o Orientation) Down() Direction { return o.Reface(NegY) }

// Left returns where NegX ends up under the orientation.
func (o Orientation) Left() Direction { return o.Reface(NegX) }

// Right returns where PosX ends up under the orientation.
func (o Orientation) Right() Direction { return o.Reface(PosX) }

// Forward returns where NegZ ends up under the orientation.
func (o Orientation) Forward() Direction { return o.Reface(NegZ) }

// Backward returns where PosZ ends up under the orientation.
func (o Orientation) Backward() Direction { return o.Reface(PosZ) }

// Reorient applies another orientation on top of this one. The flips
// combine by XOR; the rotation is reconstructed from the flip-adjusted
// images of up and forward. The reconstruction cannot fail for valid
// inputs: a panic here means an internal defect, not a bad argument.
func (o Orientation) Reorient(other Orientation) Orientation {
	up := other.Reface(o.Up())
	fwd := other.Reface(o.Forward())
	flip := o.Flip().Xor(other.Flip())
	rot, ok := RotationFromUpAndForward(up.Flip(flip), fwd.Flip(flip))
	if !ok {
		panic("geom: Reorient produced a non-orthogonal up/forward pair")
	}
	return NewOrientation(rot, flip)
}

// Deorient removes another orientation from this one, undoing a previous
// Reorient by the same orientation.
func (o Orientation) Deorient(other Orientation) Orientation {
	up := other.SourceFace(o.Up())
	fwd := other.SourceFace(o.Forward())
	flip := o.Flip().Xor(other.Flip())
	rot, ok := RotationFromUpAndForward(up.Flip(flip), fwd.Flip(flip))
	if !ok {
		panic("geom: Deorient produced a non-orthogonal up/forward pair")
	}
	return NewOrientation(rot, flip)
}

// Invert returns the orientation that deorients by o; applying it via
// Reorient after o yields Unoriented. The result is precomputed for all
// 192 byte values.
func (o Orientation) Invert() Orientation {
	return invertTable[o]
}

// CanonicalGroup identifies which of the four redundant encodings of the
// same net transform this byte uses. Group 0 is the canonical one.
func (o Orientation) CanonicalGroup() uint8 {
	return uint8(o>>1) & 0b11
}

// IsCanonical reports whether the orientation is its class representative:
// its flip is FlipNone or FlipX.
func (o Orientation) IsCanonical() bool {
	return o.CanonicalGroup() == 0
}

// Canonicalize rewrites the orientation to the representative of its
// class: the unique encoding of the same net transform whose flip is
// FlipNone or FlipX. Canonicalize is idempotent.
func (o Orientation) Canonicalize() Orientation {
	return canonicalTable[o]
}

// Cycle advances through all 192 orientations by offset in byte order,
// which cycles the flip fastest. Wraps with the Euclidean remainder.
func (o Orientation) Cycle(offset int) Orientation {
	return Orientation(wrapIndex(int(o), offset, orientationCount))
}

// CycleRotationFirst advances through all 192 orientations cycling the
// rotation before the flip. Both cycle orders visit every orientation
// exactly once; downstream consumers depend on each specific order.
func (o Orientation) CycleRotationFirst(offset int) Orientation {
	idx := int(o.Flip())*rotationCount + int(o.Rotation())
	idx = wrapIndex(idx, offset, orientationCount)
	return NewOrientation(Rotation(idx%rotationCount), Flip(idx/rotationCount))
}

// CycleRotation keeps the flip and cycles only the rotation.
func (o Orientation) CycleRotation(offset int) Orientation {
	return NewOrientation(o.Rotation().Cycle(offset), o.Flip())
}

// Angles returns the four-step cycle generated by repeatedly applying o.
func (o Orientation) Angles() [4]Orientation {
	a2 := o.Reorient(o)
	a3 := a2.Reorient(o)
	return [4]Orientation{Unoriented, o, a2, a3}
}

// CornerAngles returns the three-step cycle generated by a corner
// orientation.
func (o Orientation) CornerAngles() [3]Orientation {
	return [3]Orientation{Unoriented, o, o.Reorient(o)}
}

// FaceOrientation returns the orientation that turns the cube
// counter-clockwise around face by angle quarter turns.
func FaceOrientation(face Direction, angle int) Orientation {
	return faceOrientations[face][angle&3]
}

// CornerOrientation returns the orientation that twists the cube around
// the corner nearest (x, y, z) by angle thirds of a turn.
func CornerOrientation(x, y, z, angle int) Orientation {
	return cornerOrientations[cornerSide(y)][cornerSide(z)][cornerSide(x)][wrapIndex(0, angle, 3)]
}

// Flipped toggles the given mirrors on top of the orientation.
func (o Orientation) Flipped(f Flip) Orientation {
	return o ^ Orientation(f)
}

func (o Orientation) FlipX() Orientation   { return o.Flipped(FlipX) }
func (o Orientation) FlipY() Orientation   { return o.Flipped(FlipY) }
func (o Orientation) FlipZ() Orientation   { return o.Flipped(FlipZ) }
func (o Orientation) FlipXY() Orientation  { return o.Flipped(FlipXY) }
func (o Orientation) FlipXZ() Orientation  { return o.Flipped(FlipXZ) }
func (o Orientation) FlipYZ() Orientation  { return o.Flipped(FlipYZ) }
func (o Orientation) FlipXYZ() Orientation { return o.Flipped(FlipXYZ) }

// RotatedX applies angle quarter turns around the X axis.
func (o Orientation) RotatedX(angle int) Orientation {
	return o.Reorient(faceOrientations[PosX][angle&3])
}

// RotatedY applies angle quarter turns around the Y axis.
func (o Orientation) RotatedY(angle int) Orientation {
	return o.Reorient(faceOrientations[PosY][angle&3])
}

// RotatedZ applies angle quarter turns around the Z axis.
func (o Orientation) RotatedZ(angle int) Orientation {
	return o.Reorient(faceOrientations[PosZ][angle&3])
}

// RotatedFace turns the orientation around face by angle quarter turns.
func (o Orientation) RotatedFace(face Direction, angle int) Orientation {
	return o.Reorient(FaceOrientation(face, angle))
}

// RotatedCorner twists the orientation around the corner nearest (x, y, z).
func (o Orientation) RotatedCorner(x, y, z, angle int) Orientation {
	return o.Reorient(CornerOrientation(x, y, z, angle))
}

// Transform maps a coordinate triple through the orientation: rotate, then
// flip. Consistent with Reface on unit face vectors. Mesh code should
// check Flip.Parity to know when to reverse winding.
func Transform[T Coord](o Orientation, x, y, z T) (T, T, T) {
	x, y, z = RotateCoord(o.Rotation(), x, y, z)
	return FlipCoord(o.Flip(), x, y, z)
}

// A DeconstructedOrientation is an Orientation unpacked into its parts.
type DeconstructedOrientation struct {
	FlipX bool
	FlipY bool
	FlipZ bool
	Angle int
	Up    Direction
}

// Deconstruct unpacks the orientation.
func (o Orientation) Deconstruct() DeconstructedOrientation {
	f := o.Flip()
	r := o.Rotation()
	return DeconstructedOrientation{
		FlipX: f.X(),
		FlipY: f.Y(),
		FlipZ: f.Z(),
		Angle: r.Angle(),
		Up:    r.Up(),
	}
}

// Construct packs the parts back into an Orientation.
func (d DeconstructedOrientation) Construct() Orientation {
	return NewOrientation(NewRotation(d.Up, d.Angle), NewFlip(d.FlipX, d.FlipY, d.FlipZ))
}

func (o Orientation) String() string {
	return fmt.Sprintf("Orientation(%s,%s)", o.Flip(), o.Rotation())
}
