package raster

// Color is an RGB color with float64 channels in 0–255 space.
// Shader math (lerp, intensity scaling, additive terms) runs unclamped;
// Clamp or Hex bring the result back into range at the end.
type Color struct {
	R, G, B float64
}

// New builds a color from 8-bit channel values.
func New(r, g, b uint8) Color {
	return Color{float64(r), float64(g), float64(b)}
}

// FromFloat builds a color from normalized channels in [0, 1].
func FromFloat(r, g, b float64) Color {
	return Color{r * 255, g * 255, b * 255}
}

// Lerp interpolates linearly between c and other. The factor is
// clamped to [0, 1] first, so noise values slightly out of range
// never extrapolate.
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		c.R + (other.R-c.R)*t,
		c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t,
	}
}

// Mul scales all channels by an intensity factor.
func (c Color) Mul(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Add sums two colors channel-wise, e.g. ambient + diffuse terms.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Clamp limits every channel to [0, 255].
func (c Color) Clamp() Color {
	return Color{clampChan(c.R), clampChan(c.G), clampChan(c.B)}
}

// Hex packs the clamped color into 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(round8(c.R))<<16 | uint32(round8(c.G))<<8 | uint32(round8(c.B))
}

// RGB returns the clamped 8-bit channel values.
func (c Color) RGB() (r, g, b uint8) {
	return round8(c.R), round8(c.G), round8(c.B)
}

func clampChan(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func round8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
