// Package geom implements the orientation algebra for axis-aligned cubes:
// the 6 face normals (Direction), the order-8 reflection group (Flip), the
// 24 pure cube rotations (Rotation), and their 192-state composite
// (Orientation), together with startup-generated lookup tables that answer
// face and UV remapping queries in O(1).
//
// All types are single-byte values with fixed, permanent bit layouts (see
// the type docs); they are safe to persist and to share between goroutines.
// The lookup tables are generated once during package initialization from
// slow reference algorithms and are read-only afterwards.
package geom

// Coord constrains the signed numeric types that coordinate tuples come in.
type Coord interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// WrapAngle wraps a quarter-turn angle into 0..3.
// Cube faces have four UV angles (up = up, left, down, right).
func WrapAngle(angle int) int {
	return angle & 3
}

// wrapIndex advances i by offset modulo n using the Euclidean remainder,
// so negative offsets cycle backwards instead of going out of range.
func wrapIndex(i, offset, n int) int {
	m := (int64(i) + int64(offset)) % int64(n)
	if m < 0 {
		m += int64(n)
	}
	return int(m)
}
