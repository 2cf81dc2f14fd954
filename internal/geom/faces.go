package geom

import "fmt"

// Faces is an orthogonal up/right/forward frame, the fully-resolved form of
// a Rotation. The three remaining slots are the inverses of these.
type Faces struct {
	up      Direction
	right   Direction
	forward Direction
}

// UnorientedFaces is the frame of the identity rotation.
var UnorientedFaces = Faces{up: PosY, right: PosX, forward: NegZ}

// NewFaces builds a frame from three directions. It reports false when any
// two share an axis.
func NewFaces(up, right, forward Direction) (Faces, bool) {
	if !up.IsOrthogonalTo(right) || !up.IsOrthogonalTo(forward) || !right.IsOrthogonalTo(forward) {
		return Faces{}, false
	}
	return Faces{up: up, right: right, forward: forward}, true
}

func (f Faces) Up() Direction      { return f.up }
func (f Faces) Right() Direction   { return f.right }
func (f Faces) Forward() Direction { return f.forward }

func (f Faces) Down() Direction     { return f.up.Invert() }
func (f Faces) Left() Direction     { return f.right.Invert() }
func (f Faces) Backward() Direction { return f.forward.Invert() }

func (f Faces) String() string {
	return fmt.Sprintf("Faces(up=%s,right=%s,forward=%s)", f.up, f.right, f.forward)
}
