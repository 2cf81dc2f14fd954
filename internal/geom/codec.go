package geom

import "fmt"

// Single-byte binary codecs. Every type marshals to its stored byte value
// and validates on the way back in, so corrupt bytes surface at decode time
// rather than as out-of-range table indexes later.

func (d Direction) MarshalBinary() ([]byte, error) {
	return []byte{d.Byte()}, nil
}

func (d *Direction) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("geom: direction: expected 1 byte, got %d", len(data))
	}
	v, err := DirectionFromByte(data[0])
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (f Flip) MarshalBinary() ([]byte, error) {
	return []byte{f.Byte()}, nil
}

func (f *Flip) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("geom: flip: expected 1 byte, got %d", len(data))
	}
	v, err := FlipFromByte(data[0])
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (r Rotation) MarshalBinary() ([]byte, error) {
	return []byte{r.Byte()}, nil
}

func (r *Rotation) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("geom: rotation: expected 1 byte, got %d", len(data))
	}
	v, err := RotationFromByte(data[0])
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (o Orientation) MarshalBinary() ([]byte, error) {
	return []byte{o.Byte()}, nil
}

func (o *Orientation) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("geom: orientation: expected 1 byte, got %d", len(data))
	}
	v, err := OrientationFromByte(data[0])
	if err != nil {
		return err
	}
	*o = v
	return nil
}
