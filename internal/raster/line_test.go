package raster

import "testing"

func countLit(fb *Framebuffer) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) != fb.Background.Hex() {
				n++
			}
		}
	}
	return n
}

func TestDrawLineHorizontal(t *testing.T) {
	fb, err := NewFramebuffer(16, 4)
	if err != nil {
		t.Fatal(err)
	}

	fb.DrawLine(0, 0, 10, 0, 0.5, 1, New(255, 255, 255))

	// Both endpoints inclusive: exactly 11 pixels.
	if got := countLit(fb); got != 11 {
		t.Errorf("lit pixels = %d, want 11", got)
	}
	for x := 0; x <= 10; x++ {
		if fb.At(x, 0) != 0xFFFFFF {
			t.Errorf("pixel (%d,0) not lit", x)
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	fb, err := NewFramebuffer(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	fb.DrawLine(0, 0, 5, 5, 0.5, 1, New(255, 255, 255))

	for i := 0; i <= 5; i++ {
		if fb.At(i, i) != 0xFFFFFF {
			t.Errorf("pixel (%d,%d) not lit", i, i)
		}
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	fb, err := NewFramebuffer(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	fb.DrawLine(2, 2, 2, 2, 0.5, 1, New(255, 255, 255))
	if got := countLit(fb); got != 1 {
		t.Errorf("lit pixels = %d, want 1", got)
	}
}

func TestDrawLineZeroThickness(t *testing.T) {
	fb, err := NewFramebuffer(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	fb.DrawLine(0, 0, 3, 3, 0.5, 0, New(255, 255, 255))
	if got := countLit(fb); got != 0 {
		t.Errorf("thickness 0 lit %d pixels, want 0", got)
	}
}

func TestDrawLineDepthTested(t *testing.T) {
	fb, err := NewFramebuffer(16, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Nearer geometry already at (5,0); a farther line must not cover it.
	fb.Point(5, 0, 0.1, New(255, 0, 0))
	fb.DrawLine(0, 0, 10, 0, 0.5, 1, New(255, 255, 255))

	if got := fb.At(5, 0); got != 0xFF0000 {
		t.Errorf("line overwrote nearer pixel: At = %#06x", got)
	}
	if got := fb.At(4, 0); got != 0xFFFFFF {
		t.Errorf("line missing at (4,0): At = %#06x", got)
	}
}

func TestDrawLineClipped(t *testing.T) {
	fb, err := NewFramebuffer(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	// Must not panic; only the in-bounds portion lands.
	fb.DrawLine(-5, 3, 12, 3, 0.5, 1, New(255, 255, 255))
	for x := 0; x < 8; x++ {
		if fb.At(x, 3) != 0xFFFFFF {
			t.Errorf("pixel (%d,3) not lit", x)
		}
	}
}
