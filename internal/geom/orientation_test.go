package geom

import "testing"

func allOrientations() []Orientation {
	os := make([]Orientation, 0, orientationCount)
	for b := byte(0); b < orientationCount; b++ {
		os = append(os, Orientation(b))
	}
	return os
}

func TestOrientationByteLayout(t *testing.T) {
	for _, r := range allRotations() {
		for f := Flip(0); f <= FlipAll; f++ {
			o := NewOrientation(r, f)
			if o.Rotation() != r || o.Flip() != f {
				t.Fatalf("NewOrientation(%s, %s) unpacked to (%s, %s)", r, f, o.Rotation(), o.Flip())
			}
			if want := byte(f) | byte(r)<<3; o.Byte() != want {
				t.Fatalf("NewOrientation(%s, %s).Byte() = %d, want %d", r, f, o.Byte(), want)
			}
		}
	}
	if got := NewOrientation(Rotation(2), FlipXZ).Byte(); got != 21 {
		t.Fatalf("packed byte = %d, want 21", got)
	}
	if _, err := OrientationFromByte(191); err != nil {
		t.Fatalf("OrientationFromByte(191): %v", err)
	}
	if _, err := OrientationFromByte(192); err == nil {
		t.Fatal("OrientationFromByte(192) accepted an out-of-range byte")
	}
	if OrientationFromByteWrapping(192) != Unoriented {
		t.Fatal("OrientationFromByteWrapping(192) did not wrap to Unoriented")
	}
}

func TestOrientationReface(t *testing.T) {
	for _, o := range allOrientations() {
		for _, d := range Directions {
			want := o.Rotation().Reface(d).Flip(o.Flip())
			if got := o.Reface(d); got != want {
				t.Errorf("%s.Reface(%s) = %s, want %s", o, d, got, want)
			}
			if got := o.SourceFace(o.Reface(d)); got != d {
				t.Errorf("%s: SourceFace(Reface(%s)) = %s", o, d, got)
			}
			if got := o.Reface(o.SourceFace(d)); got != d {
				t.Errorf("%s: Reface(SourceFace(%s)) = %s", o, d, got)
			}
		}
	}
	if Unoriented.Reface(PosY) != PosY || Unoriented.Up() != PosY {
		t.Fatal("Unoriented moved a face")
	}
}

func TestOrientationGroupLaws(t *testing.T) {
	for _, a := range allOrientations() {
		if a.Reorient(Unoriented) != a || Unoriented.Reorient(a) != a {
			t.Fatalf("%s: identity law broken", a)
		}
		inv := a.Invert()
		if a.Reorient(inv) != Unoriented || inv.Reorient(a) != Unoriented {
			t.Fatalf("%s: inverse law broken", a)
		}
		if inv.Invert() != a {
			t.Fatalf("%s: Invert is not an involution", a)
		}
		for _, b := range allOrientations() {
			ab := a.Reorient(b)
			if ab.Deorient(b) != a {
				t.Fatalf("Deorient does not undo Reorient for (%s, %s)", a, b)
			}
			for _, d := range Directions {
				if ab.Reface(d) != b.Reface(a.Reface(d)) {
					t.Fatalf("composed Reface mismatch for (%s, %s, %s)", a, b, d)
				}
			}
		}
	}
}

func TestOrientationCanonicalize(t *testing.T) {
	counts := make(map[Orientation]int)
	for _, o := range allOrientations() {
		c := o.Canonicalize()
		counts[c]++
		if !c.IsCanonical() {
			t.Fatalf("%s.Canonicalize() = %s is not canonical", o, c)
		}
		if c.Canonicalize() != c {
			t.Fatalf("Canonicalize is not idempotent at %s", o)
		}
		if o.IsCanonical() && c != o {
			t.Fatalf("canonical %s was rewritten to %s", o, c)
		}
		// The byte changes but the transform does not.
		for _, d := range Directions {
			if c.Reface(d) != o.Reface(d) {
				t.Fatalf("%s.Canonicalize() changed Reface(%s)", o, d)
			}
		}
	}
	if len(counts) != 48 {
		t.Fatalf("found %d canonical representatives, want 48", len(counts))
	}
	for c, n := range counts {
		if n != 4 {
			t.Errorf("representative %s covers %d encodings, want 4", c, n)
		}
	}
}

func TestOrientationCanonicalGroup(t *testing.T) {
	// The group is carried entirely by the Y and Z flip bits.
	for _, o := range allOrientations() {
		f := o.Flip()
		want := uint8(0)
		if f.Y() {
			want |= 1
		}
		if f.Z() {
			want |= 2
		}
		if got := o.CanonicalGroup(); got != want {
			t.Errorf("%s.CanonicalGroup() = %d, want %d", o, got, want)
		}
	}
}

func TestOrientationCycles(t *testing.T) {
	check := func(name string, next func(Orientation) Orientation) {
		seen := make(map[Orientation]bool)
		o := Unoriented
		for i := 0; i < orientationCount; i++ {
			if seen[o] {
				t.Fatalf("%s revisited %s after %d steps", name, o, i)
			}
			seen[o] = true
			o = next(o)
		}
		if o != Unoriented {
			t.Fatalf("%s did not close: ended at %s", name, o)
		}
	}
	check("Cycle", func(o Orientation) Orientation { return o.Cycle(1) })
	check("CycleRotationFirst", func(o Orientation) Orientation { return o.CycleRotationFirst(1) })

	// Byte order steps the flip first; rotation-first order steps the
	// rotation.
	if Unoriented.Cycle(1) != NewOrientation(Unrotated, FlipX) {
		t.Fatal("Cycle(1) did not advance the flip")
	}
	if Unoriented.CycleRotationFirst(1) != NewOrientation(Rotation(1), FlipNone) {
		t.Fatal("CycleRotationFirst(1) did not advance the rotation")
	}
	if Unoriented.Cycle(-1) != Orientation(orientationCount-1) {
		t.Fatal("Cycle(-1) did not wrap backwards")
	}
	if Unoriented.CycleRotationFirst(-1) != NewOrientation(Rotation(rotationCount-1), FlipXYZ) {
		t.Fatal("CycleRotationFirst(-1) did not wrap backwards")
	}
	for _, o := range allOrientations() {
		if got := o.CycleRotation(1); got.Flip() != o.Flip() || got.Rotation() != o.Rotation().Cycle(1) {
			t.Errorf("%s.CycleRotation(1) = %s", o, got)
		}
	}
}

func TestOrientationFlipped(t *testing.T) {
	for _, o := range allOrientations() {
		for f := Flip(0); f <= FlipAll; f++ {
			g := o.Flipped(f)
			if g.Rotation() != o.Rotation() {
				t.Fatalf("%s.Flipped(%s) changed the rotation", o, f)
			}
			if g.Flip() != o.Flip().Xor(f) {
				t.Fatalf("%s.Flipped(%s) flip = %s", o, f, g.Flip())
			}
			if g.Flipped(f) != o {
				t.Fatalf("%s.Flipped(%s) is not an involution", o, f)
			}
		}
		if o.FlipX() != o.Flipped(FlipX) || o.FlipXYZ() != o.Flipped(FlipXYZ) {
			t.Fatalf("%s: flip helpers disagree with Flipped", o)
		}
	}
}

func TestOrientationRotated(t *testing.T) {
	if Unoriented.RotatedY(1) != OrientRotateY || Unoriented.RotatedX(1) != OrientRotateX || Unoriented.RotatedZ(1) != OrientRotateZ {
		t.Fatal("RotatedX/Y/Z do not start from the generators")
	}
	for _, face := range Directions {
		for a := 0; a < 4; a++ {
			if FaceOrientation(face, a) != FaceRotation(face, a).Orientation() {
				t.Fatalf("FaceOrientation(%s, %d) disagrees with FaceRotation", face, a)
			}
		}
	}
	for _, o := range allOrientations() {
		if o.RotatedY(1).RotatedY(-1) != o {
			t.Errorf("%s: RotatedY(1) then RotatedY(-1) is not a no-op", o)
		}
		if o.RotatedCorner(-1, -1, -1, 1).RotatedCorner(-1, -1, -1, 2) != o {
			t.Errorf("%s: corner turns do not cancel", o)
		}
	}
}

func TestOrientationTransform(t *testing.T) {
	for _, o := range allOrientations() {
		for _, d := range Directions {
			ux, uy, uz := d.Unit()
			gx, gy, gz := Transform(o, ux, uy, uz)
			wx, wy, wz := o.Reface(d).Unit()
			if gx != wx || gy != wy || gz != wz {
				t.Errorf("Transform and Reface disagree for (%s, %s)", o, d)
			}
		}
	}
	x, y, z := Transform(NewOrientation(Unrotated, FlipXZ), 1, 2, 3)
	if x != -1 || y != 2 || z != -3 {
		t.Fatalf("Transform(FlipXZ) = (%d,%d,%d)", x, y, z)
	}
}

func TestOrientationDeconstruct(t *testing.T) {
	for _, o := range allOrientations() {
		d := o.Deconstruct()
		if d.Construct() != o {
			t.Fatalf("Deconstruct/Construct roundtrip failed for %s", o)
		}
		if d.Up != o.Rotation().Up() || d.Angle != o.Rotation().Angle() {
			t.Fatalf("%s deconstructed rotation mismatch", o)
		}
	}
	d := NewOrientation(NewRotation(NegZ, 3), FlipY).Deconstruct()
	if !d.FlipY || d.FlipX || d.FlipZ || d.Up != NegZ || d.Angle != 3 {
		t.Fatalf("unexpected deconstruction: %+v", d)
	}
}

func TestOrientationWith(t *testing.T) {
	o := NewOrientation(NewRotation(PosX, 2), FlipZ)
	if o.WithFlip(FlipY).Rotation() != o.Rotation() || o.WithFlip(FlipY).Flip() != FlipY {
		t.Fatal("WithFlip broken")
	}
	if o.WithRotation(RotateY).Flip() != FlipZ || o.WithRotation(RotateY).Rotation() != RotateY {
		t.Fatal("WithRotation broken")
	}
	if o.WithUp(NegY).Rotation() != NewRotation(NegY, 2) {
		t.Fatal("WithUp broken")
	}
	if o.WithAngle(0).Rotation() != NewRotation(PosX, 0) {
		t.Fatal("WithAngle broken")
	}
	if o.Rotation().WithFlip(FlipZ) != o || o.Rotation().Orientation() != o.WithFlip(FlipNone) {
		t.Fatal("Rotation to Orientation lifts broken")
	}
}

func TestBinaryCodecs(t *testing.T) {
	o := NewOrientation(NewRotation(NegX, 1), FlipXY)
	data, err := o.MarshalBinary()
	if err != nil || len(data) != 1 {
		t.Fatalf("MarshalBinary: %v (%d bytes)", err, len(data))
	}
	var back Orientation
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != o {
		t.Fatalf("roundtrip gave %s, want %s", back, o)
	}
	if err := back.UnmarshalBinary([]byte{192}); err == nil {
		t.Fatal("UnmarshalBinary accepted byte 192")
	}
	if err := back.UnmarshalBinary(nil); err == nil {
		t.Fatal("UnmarshalBinary accepted empty input")
	}

	var r Rotation
	if err := r.UnmarshalBinary([]byte{24}); err == nil {
		t.Fatal("rotation UnmarshalBinary accepted byte 24")
	}
	var f Flip
	if err := f.UnmarshalBinary([]byte{8}); err == nil {
		t.Fatal("flip UnmarshalBinary accepted byte 8")
	}
	var d Direction
	if err := d.UnmarshalBinary([]byte{6}); err == nil {
		t.Fatal("direction UnmarshalBinary accepted byte 6")
	}
}
