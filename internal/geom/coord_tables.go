package geom

// The coordinate-map tables hold one CoordMap per (orientation, world face)
// pair, 1152 entries each. Like the rotation tables they are generated at
// package initialization from a slow frame-comparison algorithm.

func coordTableIndex(o Orientation, world Direction) int {
	return int(o.Flip())*144 + int(o.Rotation())*6 + int(world)
}

var mapFaceCoordTable = buildCoordTable(mapFaceCoordFor)

var sourceFaceCoordTable = buildCoordTable(sourceFaceCoordFor)

func buildCoordTable(derive func(Orientation, Direction) CoordMap) (t [orientationCount * 6]CoordMap) {
	for f := Flip(0); f <= FlipAll; f++ {
		for r := Rotation(0); r < rotationCount; r++ {
			o := NewOrientation(r, f)
			for w := Direction(0); w < 6; w++ {
				t[coordTableIndex(o, w)] = derive(o, w)
			}
		}
	}
	return t
}

// mapFaceCoordFor compares the world face's UV frame against the oriented
// image of its source face's frame to find where u and v land.
func mapFaceCoordFor(o Orientation, world Direction) CoordMap {
	src := o.SourceFace(world)
	srcRight := o.Reface(src.Right())
	srcUp := o.Reface(src.Up())
	srcDown := o.Reface(src.Down())
	srcLeft := o.Reface(src.Left())

	// A quarter turn of the frame moves both axes together, so each UV axis
	// only needs its own comparison; the polarities stay independent.
	var x axisMap
	switch world.Right() {
	case srcRight:
		x = axisPosX
	case srcUp:
		x = axisNegY
	case srcLeft:
		x = axisNegX
	default:
		x = axisPosY
	}

	var y axisMap
	switch world.Up() {
	case srcUp:
		y = axisPosY
	case srcLeft:
		y = axisPosX
	case srcDown:
		y = axisNegY
	default:
		y = axisNegX
	}

	return coordMapFromPair(x, y)
}

// sourceFaceCoordFor is the inverse derivation: it asks which world UV slot
// the source face's u and v axes came from.
func sourceFaceCoordFor(o Orientation, world Direction) CoordMap {
	src := o.SourceFace(world)
	srcRight := o.Reface(src.Right())
	srcUp := o.Reface(src.Up())

	var x axisMap
	switch srcRight {
	case world.Right():
		x = axisPosX
	case world.Down():
		x = axisPosY
	case world.Left():
		x = axisNegX
	default:
		x = axisNegY
	}

	var y axisMap
	switch srcUp {
	case world.Up():
		y = axisPosY
	case world.Right():
		y = axisNegX
	case world.Down():
		y = axisNegY
	default:
		y = axisPosX
	}

	return coordMapFromPair(x, y)
}
