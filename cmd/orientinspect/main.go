// orientinspect decodes orientation bytes and prints their components,
// face mapping, canonical form, and inverse.
package main

import (
	"fmt"
	"os"
	"strconv"

	"cube-orient/internal/geom"
)

func inspect(o geom.Orientation) {
	r := o.Rotation()
	f := o.Flip()
	fmt.Printf("byte %3d  %s\n", o.Byte(), o)
	fmt.Printf("  rotation   %2d  up=%s angle=%d\n", r.Byte(), r.Up(), r.Angle())
	fmt.Printf("  flip        %d  %s parity=%v\n", f.Byte(), f, f.Parity())
	fmt.Printf("  frame      up=%s right=%s forward=%s\n", o.Up(), o.Right(), o.Forward())
	fmt.Printf("  canonical  group=%d byte=%d\n", o.CanonicalGroup(), o.Canonicalize().Byte())
	fmt.Printf("  invert     byte=%d\n", o.Invert().Byte())
	for _, world := range geom.RotationOrder {
		fmt.Printf("  face %-4s  from %-4s angle=%d uv=%s\n",
			world, o.SourceFace(world), r.FaceAngle(world), geom.FaceCoordMap(o, world))
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <orientation byte>...\n", os.Args[0])
		os.Exit(1)
	}
	for i, arg := range os.Args[1:] {
		b, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a byte: %v\n", arg, err)
			os.Exit(1)
		}
		o, err := geom.OrientationFromByte(byte(b))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if i > 0 {
			fmt.Println()
		}
		inspect(o)
	}
}
