// orientatlas renders the unfolded-cube atlas of an orientation byte to a
// WebP image.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"cube-orient/internal/atlas"
	"cube-orient/internal/geom"
	"cube-orient/internal/texture"
)

// orientationFlag validates the -orient value before it narrows to a byte,
// so out-of-range ints error instead of wrapping.
func orientationFlag(v int) (geom.Orientation, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("orientation %d out of range 0..191", v)
	}
	return geom.OrientationFromByte(byte(v))
}

func main() {
	orientByte := flag.Int("orient", 0, "orientation byte (0..191)")
	tile := flag.Int("tile", 128, "tile size in pixels")
	out := flag.String("out", "atlas.webp", "output WebP path")
	tex := flag.String("tex", "", "texture for every face (TGA/PNG/JPEG); empty uses a test pattern")
	var facePaths [6]*string
	for _, face := range geom.RotationOrder {
		name := face.String()
		facePaths[face] = flag.String(strings.ToLower(name), "", "texture for the "+name+" face (overrides -tex)")
	}
	flag.Parse()

	o, err := orientationFlag(*orientByte)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var faces atlas.FaceSet
	cache := texture.NewCache()
	for _, face := range geom.RotationOrder {
		path := *facePaths[face]
		if path == "" {
			path = *tex
		}
		if path == "" {
			continue
		}
		img, err := cache.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		faces.Set(face, img)
	}
	faces.Fill(texture.TestPattern(*tile))

	img, err := atlas.Render(o, &faces, *tile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: encode %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: close %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("OK  %s -> %s (%dx%d)\n", o, *out, 4**tile, 3**tile)
}
