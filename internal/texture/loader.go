// Package texture loads face textures for the atlas tools and provides a
// procedural fallback pattern.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// Load reads a TGA, PNG, or JPEG file and returns an NRGBA image. The
// decoder is picked by extension: TGA has no magic bytes, so content
// sniffing cannot tell the formats apart.
func Load(path string) (*image.NRGBA, error) {
	var decode func(io.Reader) (image.Image, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga":
		decode = tga.Decode
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	default:
		return nil, fmt.Errorf("texture: unknown extension %q: %s", ext, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to NRGBA format.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel in the source; force it opaque.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
