package geom

import "testing"

var allCoordMaps = [8]CoordMap{
	MapPosXPosY, MapNegXPosY, MapPosXNegY, MapNegXNegY,
	MapPosYPosX, MapNegYPosX, MapPosYNegX, MapNegYNegX,
}

func TestMapUV(t *testing.T) {
	want := map[CoordMap][2]int{
		MapPosXPosY: {2, 3},
		MapNegXPosY: {-2, 3},
		MapPosXNegY: {2, -3},
		MapNegXNegY: {-2, -3},
		MapPosYPosX: {3, 2},
		MapNegYPosX: {-3, 2},
		MapPosYNegX: {3, -2},
		MapNegYNegX: {-3, -2},
	}
	for m, w := range want {
		u, v := MapUV(m, 2, 3)
		if u != w[0] || v != w[1] {
			t.Errorf("MapUV(%s, 2, 3) = (%d,%d), want (%d,%d)", m, u, v, w[0], w[1])
		}
	}
}

func TestCoordMapInvert(t *testing.T) {
	for _, m := range allCoordMaps {
		u, v := MapUV(m, 2, 3)
		bu, bv := MapUV(m.Invert(), u, v)
		if bu != 2 || bv != 3 {
			t.Errorf("%s.Invert() does not undo the map: got (%d,%d)", m, bu, bv)
		}
	}
}

func TestMapFaceCoordIdentity(t *testing.T) {
	for _, face := range Directions {
		u, v := MapFaceCoord(Unoriented, face, 7, -4)
		if u != 7 || v != -4 {
			t.Errorf("MapFaceCoord(Unoriented, %s) = (%d,%d)", face, u, v)
		}
	}
}

func TestMapFaceCoordRotateY(t *testing.T) {
	// A quarter turn around +Y spins the top face texture a quarter turn.
	u, v := MapFaceCoord(OrientRotateY, PosY, 1, 0)
	if u != 0 || v != -1 {
		t.Fatalf("MapFaceCoord(OrientRotateY, PosY, 1, 0) = (%d,%d), want (0,-1)", u, v)
	}
	bu, bv := SourceFaceCoord(OrientRotateY, PosY, u, v)
	if bu != 1 || bv != 0 {
		t.Fatalf("SourceFaceCoord did not undo MapFaceCoord: (%d,%d)", bu, bv)
	}
	// Side faces keep their texture upright under a yaw.
	for _, face := range []Direction{PosX, NegX, PosZ, NegZ} {
		u, v := MapFaceCoord(OrientRotateY, face, 5, 9)
		if u != 5 || v != 9 {
			t.Errorf("MapFaceCoord(OrientRotateY, %s) = (%d,%d), want (5,9)", face, u, v)
		}
	}
}

func TestSourceFaceCoordInvertsMapFaceCoord(t *testing.T) {
	points := [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, -5}}
	for _, o := range allOrientations() {
		for _, face := range Directions {
			for _, p := range points {
				u, v := MapFaceCoord(o, face, p[0], p[1])
				bu, bv := SourceFaceCoord(o, face, u, v)
				if bu != p[0] || bv != p[1] {
					t.Fatalf("(%s, %s): source(map(%d,%d)) = (%d,%d)", o, face, p[0], p[1], bu, bv)
				}
				fu, fv := SourceFaceCoord(o, face, p[0], p[1])
				mu, mv := MapFaceCoord(o, face, fu, fv)
				if mu != p[0] || mv != p[1] {
					t.Fatalf("(%s, %s): map(source(%d,%d)) = (%d,%d)", o, face, p[0], p[1], mu, mv)
				}
			}
		}
	}
}

func TestMapFaceCoordFloat(t *testing.T) {
	for _, o := range allOrientations() {
		u, v := MapFaceCoord(o, PosZ, 0.25, -0.75)
		bu, bv := SourceFaceCoord(o, PosZ, u, v)
		if bu != 0.25 || bv != -0.75 {
			t.Fatalf("%s: float roundtrip gave (%v,%v)", o, bu, bv)
		}
	}
}
