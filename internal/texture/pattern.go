package texture

import (
	"image"
	"image/color"
)

// TestPattern renders a size x size probe texture with four distinct corner
// markers and an up arrow, so any rotation or mirror of the texture is
// visible at a glance.
func TestPattern(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	corner := size / 4
	corners := [4]struct {
		x0, y0 int
		c      color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 220, G: 60, B: 60, A: 255}},                          // top-left red
		{size - corner, 0, color.NRGBA{R: 60, G: 200, B: 80, A: 255}},              // top-right green
		{0, size - corner, color.NRGBA{R: 70, G: 110, B: 230, A: 255}},             // bottom-left blue
		{size - corner, size - corner, color.NRGBA{R: 230, G: 200, B: 50, A: 255}}, // bottom-right yellow
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Diagonal gradient background.
			g := uint8(120 + (x+y)*80/(2*size))
			img.SetNRGBA(x, y, color.NRGBA{R: g, G: g, B: g, A: 255})
		}
	}
	for _, c := range corners {
		for y := c.y0; y < c.y0+corner; y++ {
			for x := c.x0; x < c.x0+corner; x++ {
				img.SetNRGBA(x, y, c.c)
			}
		}
	}

	// Up arrow: a column widening toward the top quarter.
	mid := size / 2
	for y := size / 8; y < size/2; y++ {
		half := 1 + (size/2-y)/6
		for x := mid - half; x <= mid+half; x++ {
			if x >= 0 && x < size {
				img.SetNRGBA(x, y, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
			}
		}
	}
	return img
}

// Solid returns a size x size single-color texture.
func Solid(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
