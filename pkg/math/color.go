package math

// RGB is a linear color with components in [0, 1].
type RGB [3]float32

// Hex converts a 0xRRGGBB literal to RGB.
func Hex(v uint32) RGB {
	return RGB{
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}
}

// Scale multiplies every component by s.
func (c RGB) Scale(s float32) RGB {
	return RGB{c[0] * s, c[1] * s, c[2] * s}
}
