package geom

// canonicalizers[g] is the orientation that, reoriented onto a member of
// canonical group g, lands it on the group-0 representative of the same net
// transform. Each entry pairs a half-turn rotation with the flip that undoes
// it, so the net transform is the identity.
var canonicalizers = [4]Orientation{
	Unoriented,
	NewOrientation(NewRotation(NegY, 2), FlipXY),
	NewOrientation(NewRotation(PosY, 2), FlipXZ),
	NewOrientation(NewRotation(NegY, 0), FlipYZ),
}

var invertTable = buildInvertTable()

func buildInvertTable() (t [orientationCount]Orientation) {
	for o := range t {
		t[o] = Unoriented.Deorient(Orientation(o))
	}
	return t
}

var canonicalTable = buildCanonicalTable()

func buildCanonicalTable() (t [orientationCount]Orientation) {
	for o := range t {
		orient := Orientation(o)
		g := orient.CanonicalGroup()
		if g == 0 {
			t[o] = orient
			continue
		}
		t[o] = orient.Reorient(canonicalizers[g])
	}
	return t
}

// faceOrientations mirrors faceRotations in the full orientation group.
var faceOrientations = buildFaceOrientations()

func buildFaceOrientations() (t [6][4]Orientation) {
	for f, cycle := range faceRotations {
		for a, r := range cycle {
			t[f][a] = r.Orientation()
		}
	}
	return t
}

// cornerOrientations mirrors cornerRotations in the full orientation group.
var cornerOrientations = buildCornerOrientations()

func buildCornerOrientations() (t [2][2][2][3]Orientation) {
	for y := range cornerRotations {
		for z := range cornerRotations[y] {
			for x := range cornerRotations[y][z] {
				for a, r := range cornerRotations[y][z][x] {
					t[y][z][x][a] = r.Orientation()
				}
			}
		}
	}
	return t
}
