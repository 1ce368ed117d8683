package raster

import "testing"

func TestColorLerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(255, 100, 50)

	mid := a.Lerp(b, 0.5)
	if mid.R != 127.5 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Lerp 0.5 = %+v", mid)
	}

	// Factor clamps: noise slightly out of range never extrapolates.
	if got := a.Lerp(b, -0.5); got != a {
		t.Errorf("Lerp -0.5 = %+v, want a", got)
	}
	if got := a.Lerp(b, 1.5); got != b {
		t.Errorf("Lerp 1.5 = %+v, want b", got)
	}
}

func TestColorMulAdd(t *testing.T) {
	c := New(100, 50, 10).Mul(2).Add(New(5, 5, 5))
	if c.R != 205 || c.G != 105 || c.B != 25 {
		t.Errorf("Mul/Add = %+v", c)
	}
}

func TestColorClamp(t *testing.T) {
	c := Color{R: 300, G: -20, B: 128}.Clamp()
	if c.R != 255 || c.G != 0 || c.B != 128 {
		t.Errorf("Clamp = %+v", c)
	}
}

func TestColorHex(t *testing.T) {
	if got := New(0x12, 0x34, 0x56).Hex(); got != 0x123456 {
		t.Errorf("Hex = %#06x, want 0x123456", got)
	}
	// Out-of-range channels clamp when packing.
	if got := (Color{R: 999, G: -1, B: 255}).Hex(); got != 0xFF00FF {
		t.Errorf("Hex overflow = %#06x, want 0xff00ff", got)
	}
}

func TestColorRGBRounds(t *testing.T) {
	r, g, b := (Color{R: 99.6, G: 99.4, B: 254.9}).RGB()
	if r != 100 || g != 99 || b != 255 {
		t.Errorf("RGB = (%d,%d,%d), want (100,99,255)", r, g, b)
	}
}

func TestFromFloat(t *testing.T) {
	c := FromFloat(1, 0.5, 0)
	if c.R != 255 || c.G != 127.5 || c.B != 0 {
		t.Errorf("FromFloat = %+v", c)
	}
}
