package geom

import "fmt"

// A CoordMap is one of the eight UV remappings a face texture can undergo
// under an orientation: the four rotations of the plane and their mirror
// images. The name gives the output slot of u then of v: MapNegYPosX sends
// u to -v and v to u.
type CoordMap uint8

const (
	MapPosXPosY CoordMap = iota
	MapNegXPosY
	MapPosXNegY
	MapNegXNegY
	MapPosYPosX
	MapNegYPosX
	MapPosYNegX
	MapNegYNegX
)

// MapUV remaps a UV coordinate pair.
func MapUV[T Coord](m CoordMap, u, v T) (T, T) {
	switch m {
	case MapPosXPosY:
		return u, v
	case MapNegXPosY:
		return -u, v
	case MapPosXNegY:
		return u, -v
	case MapNegXNegY:
		return -u, -v
	case MapPosYPosX:
		return v, u
	case MapNegYPosX:
		return -v, u
	case MapPosYNegX:
		return v, -u
	default: // MapNegYNegX
		return -v, -u
	}
}

// An axisMap names where one input component of a UV pair lands.
type axisMap uint8

const (
	axisPosX axisMap = iota
	axisPosY
	axisNegX
	axisNegY
)

// coordMapFromPair assembles a CoordMap from the images of the u and v
// components. The pair comes from comparing face frames, which can never
// put both components on the same output axis.
func coordMapFromPair(x, y axisMap) CoordMap {
	switch {
	case x == axisPosX && y == axisPosY:
		return MapPosXPosY
	case x == axisNegX && y == axisPosY:
		return MapNegXPosY
	case x == axisPosX && y == axisNegY:
		return MapPosXNegY
	case x == axisNegX && y == axisNegY:
		return MapNegXNegY
	case x == axisPosY && y == axisPosX:
		return MapPosYPosX
	case x == axisNegY && y == axisPosX:
		return MapNegYPosX
	case x == axisPosY && y == axisNegX:
		return MapPosYNegX
	case x == axisNegY && y == axisNegX:
		return MapNegYNegX
	}
	panic("geom: coordMapFromPair given a degenerate axis pair")
}

// Invert returns the CoordMap that undoes m.
func (m CoordMap) Invert() CoordMap {
	switch m {
	case MapNegYPosX:
		return MapPosYNegX
	case MapPosYNegX:
		return MapNegYPosX
	default:
		// The remaining six maps are involutions.
		return m
	}
}

func (m CoordMap) String() string {
	switch m {
	case MapPosXPosY:
		return "Map(+x,+y)"
	case MapNegXPosY:
		return "Map(-x,+y)"
	case MapPosXNegY:
		return "Map(+x,-y)"
	case MapNegXNegY:
		return "Map(-x,-y)"
	case MapPosYPosX:
		return "Map(+y,+x)"
	case MapNegYPosX:
		return "Map(-y,+x)"
	case MapPosYNegX:
		return "Map(+y,-x)"
	case MapNegYNegX:
		return "Map(-y,-x)"
	}
	return fmt.Sprintf("CoordMap(%d)", uint8(m))
}

// FaceCoordMap returns the CoordMap MapFaceCoord applies for the pair.
func FaceCoordMap(o Orientation, world Direction) CoordMap {
	return mapFaceCoordTable[coordTableIndex(o, world)]
}

// SourceCoordMap returns the CoordMap SourceFaceCoord applies for the pair.
func SourceCoordMap(o Orientation, world Direction) CoordMap {
	return sourceFaceCoordTable[coordTableIndex(o, world)]
}

// MapFaceCoord remaps a UV coordinate on the source face of world onto the
// oriented cube's world face.
func MapFaceCoord[T Coord](o Orientation, world Direction, u, v T) (T, T) {
	return MapUV(mapFaceCoordTable[coordTableIndex(o, world)], u, v)
}

// SourceFaceCoord remaps a UV coordinate on the oriented cube's world face
// back onto its source face. It inverts MapFaceCoord.
func SourceFaceCoord[T Coord](o Orientation, world Direction, u, v T) (T, T) {
	return MapUV(sourceFaceCoordTable[coordTableIndex(o, world)], u, v)
}
