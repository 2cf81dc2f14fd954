package geom

// The rotation tables are generated here, at package initialization, by
// running the slow reference algorithm over every rotation. The reference
// algorithm stays the single source of truth: nothing in this file is
// hand-transcribed output.

// rotateWorld is the reference algorithm for refacing. A rotation is an up
// direction plus a quarter-turn angle, so every world slot of the rotated
// cube can be read off the unoriented face adjacency of up.
func rotateWorld(up Direction, angle int, world Direction) Direction {
	switch world {
	case NegX:
		return up.LeftAtAngle(angle)
	case NegY:
		return up.Invert()
	case NegZ:
		return up.UpAtAngle(angle)
	case PosX:
		return up.RightAtAngle(angle)
	case PosY:
		return up
	default: // PosZ
		return up.DownAtAngle(angle)
	}
}

var refaceTable = buildRefaceTable()

func buildRefaceTable() (t [rotationCount][6]Direction) {
	for r := range t {
		rot := Rotation(r)
		for d := range t[r] {
			t[r][d] = rotateWorld(rot.Up(), rot.Angle(), Direction(d))
		}
	}
	return t
}

var sourceFaceTable = buildSourceFaceTable()

func buildSourceFaceTable() (t [rotationCount][6]Direction) {
	for r := range refaceTable {
		for d, refaced := range refaceTable[r] {
			t[r][refaced] = Direction(d)
		}
	}
	return t
}

// upForwardTable inverts Reface on up/forward pairs; -1 marks the six
// degenerate pairs that share an axis.
var upForwardTable = buildUpForwardTable()

func buildUpForwardTable() (t [6][6]int8) {
	for up := range t {
		for fwd := range t[up] {
			t[up][fwd] = -1
		}
	}
	for r := 0; r < rotationCount; r++ {
		rot := Rotation(r)
		t[rot.Up()][rot.Forward()] = int8(r)
	}
	return t
}

// coordAxis routes one input component of a rotated coordinate: the value
// lands in the output slot axis, negated if neg.
type coordAxis struct {
	axis Axis
	neg  bool
}

// rotateCoordTable[r][a] is derived from the image of axis a's unit vector
// under Reface, so RotateCoord and Reface can never drift apart.
var rotateCoordTable = buildRotateCoordTable()

func buildRotateCoordTable() (t [rotationCount][3]coordAxis) {
	for r := range t {
		rot := Rotation(r)
		for a := range t[r] {
			img := rot.Reface(Axis(a).Pos())
			t[r][a] = coordAxis{axis: img.Axis(), neg: img.Polarity() == Neg}
		}
	}
	return t
}

// faceAngleTable[r][world] is the angle a such that the refaced source
// face's UV-up lands on world's up-at-angle-a slot.
var faceAngleTable = buildFaceAngleTable()

func buildFaceAngleTable() (t [rotationCount][6]uint8) {
	for r := range t {
		rot := Rotation(r)
		for w := range t[r] {
			world := Direction(w)
			want := rot.Reface(rot.SourceFace(world).Up())
			for a := 0; a < 4; a++ {
				if world.UpAtAngle(a) == want {
					t[r][w] = uint8(a)
					break
				}
			}
		}
	}
	return t
}

// faceRotations[face] holds the 4-cycle around face, built by repeated
// self-composition of the axis generators rather than written out by hand,
// so a defect in Reorient shows up as a cycle that fails to close.
var faceRotations = buildFaceRotations()

func buildFaceRotations() (t [6][4]Rotation) {
	gens := [6]Rotation{
		PosY: RotateY,
		PosX: RotateX,
		PosZ: RotateZ,
		NegY: RotateY.Invert(),
		NegX: RotateX.Invert(),
		NegZ: RotateZ.Invert(),
	}
	for f, g := range gens {
		t[f] = g.Angles()
	}
	return t
}

// cornerRotations[y][z][x] holds the 3-cycle around each cube corner.
var cornerRotations = buildCornerRotations()

func buildCornerRotations() (t [2][2][2][3]Rotation) {
	gens := [2][2][2]Rotation{
		{
			{NewRotation(PosX, 2), NewRotation(PosZ, 3)},
			{NewRotation(NegZ, 1), NewRotation(NegX, 0)},
		},
		{
			{NewRotation(NegZ, 3), NewRotation(PosX, 0)},
			{NewRotation(NegX, 2), NewRotation(PosZ, 1)},
		},
	}
	for y := range gens {
		for z := range gens[y] {
			for x := range gens[y][z] {
				t[y][z][x] = gens[y][z][x].CornerAngles()
			}
		}
	}
	return t
}
