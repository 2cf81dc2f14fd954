// Package atlas renders an unfolded-cube image showing how an Orientation
// maps and spins each face texture.
package atlas

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"cube-orient/internal/geom"
)

// A FaceSet holds one source texture per cube face, indexed by the face's
// rotation index.
type FaceSet [6]*image.NRGBA

// Fill assigns img to every empty slot.
func (fs *FaceSet) Fill(img *image.NRGBA) {
	for i := range fs {
		if fs[i] == nil {
			fs[i] = img
		}
	}
}

// Set assigns img to the face's slot.
func (fs *FaceSet) Set(face geom.Direction, img *image.NRGBA) {
	fs[face] = img
}

// Cross layout, 4 x 3 tiles:
//
//	      [+Y]
//	[-X]  [-Z]  [+X]  [+Z]
//	      [-Y]
var tileOrigins = [6][2]int{
	geom.PosY: {1, 0},
	geom.NegX: {0, 1},
	geom.NegZ: {1, 1},
	geom.PosX: {2, 1},
	geom.PosZ: {3, 1},
	geom.NegY: {1, 2},
}

// TileOrigin returns the tile column and row of a world face in the atlas.
func TileOrigin(face geom.Direction) (col, row int) {
	o := tileOrigins[face]
	return o[0], o[1]
}

// Render draws the oriented cube's six faces into a 4x3-tile cross atlas.
// Each output pixel is mapped back through the orientation's source-face
// UV tables and sampled bilinearly from the source texture.
func Render(o geom.Orientation, faces *FaceSet, tile int) (*image.NRGBA, error) {
	if tile < 1 {
		return nil, fmt.Errorf("atlas: tile size %d out of range", tile)
	}
	var scaled [6]*image.NRGBA
	for _, face := range geom.RotationOrder {
		src := faces[face]
		if src == nil {
			return nil, fmt.Errorf("atlas: no texture for face %s", face)
		}
		scaled[face] = scaleTo(src, tile)
	}

	out := image.NewNRGBA(image.Rect(0, 0, 4*tile, 3*tile))
	for _, world := range geom.RotationOrder {
		src := o.SourceFace(world)
		tex := scaled[src]
		ox, oy := tileOrigins[world][0]*tile, tileOrigins[world][1]*tile
		for py := 0; py < tile; py++ {
			for px := 0; px < tile; px++ {
				// Pixel center to face UV, v pointing up.
				u := (float64(px)+0.5)/float64(tile)*2 - 1
				v := 1 - (float64(py)+0.5)/float64(tile)*2
				su, sv := geom.SourceFaceCoord(o, world, u, v)
				r, g, b, a := sample(tex, (su+1)/2, (1-sv)/2)
				i := out.PixOffset(ox+px, oy+py)
				out.Pix[i] = r
				out.Pix[i+1] = g
				out.Pix[i+2] = b
				out.Pix[i+3] = a
			}
		}
	}
	return out, nil
}

// scaleTo resizes src to a size x size tile when needed.
func scaleTo(src *image.NRGBA, size int) *image.NRGBA {
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
