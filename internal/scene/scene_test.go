package scene

import (
	"bytes"
	"testing"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

func renderAt(t *testing.T, s *Scene, w, h int, time float64) *raster.Framebuffer {
	t.Helper()
	fb, err := raster.NewFramebuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	s.RenderFrame(fb, time)
	return fb
}

func TestRenderFrameDeterministic(t *testing.T) {
	const w, h = 64, 48
	a := renderAt(t, New(w, h), w, h, 500)
	b := renderAt(t, New(w, h), w, h, 500)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two scenes rendered the same time differently")
	}
}

func TestRenderFrameDrawsSomething(t *testing.T) {
	const w, h = 64, 48
	fb := renderAt(t, New(w, h), w, h, 0)

	lit := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.At(x, y) != fb.Background.Hex() {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("frame is entirely background")
	}
}

func TestReplayTrailsMatchesSequential(t *testing.T) {
	const w, h = 64, 48
	timeAt := func(f int) float64 { return float64(f) * 16 }

	seq := New(w, h)
	fbSeq, err := raster.NewFramebuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for f := 0; f <= 3; f++ {
		seq.RenderFrame(fbSeq, timeAt(f))
	}

	jump := New(w, h)
	jump.ReplayTrails(3, timeAt)
	fbJump, err := raster.NewFramebuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	jump.RenderFrame(fbJump, timeAt(3))

	if !bytes.Equal(fbSeq.Pix, fbJump.Pix) {
		t.Error("replayed frame 3 differs from sequentially rendered frame 3")
	}
}

func TestTrailBounded(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 10; i++ {
		tr.Add(mathutil.Vec3{float64(i), 0, 0})
	}
	if tr.Len() != 3 {
		t.Fatalf("trail length = %d, want 3", tr.Len())
	}
	// Oldest entries dropped first.
	ps := tr.Positions()
	if ps[0][0] != 7 || ps[2][0] != 9 {
		t.Errorf("trail holds %v, want positions 7..9", ps)
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("trail length after Reset = %d", tr.Len())
	}
}

func TestTrailMinimumCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Add(mathutil.Vec3{1, 0, 0})
	tr.Add(mathutil.Vec3{2, 0, 0})
	if tr.Len() != 2 {
		t.Errorf("trail length = %d, want raised minimum of 2", tr.Len())
	}
}

func TestBodyOrbitPlanes(t *testing.T) {
	flat := &Body{OrbitRadius: 10, OrbitRate: 0.5}
	p := flat.positionAt(mathutil.Vec3{}, 1)
	if p[1] != 0 {
		t.Errorf("horizontal orbit left the XZ plane: %v", p)
	}

	vertical := &Body{OrbitRadius: 10, OrbitRate: 0.5, VerticalOrbit: true}
	p = vertical.positionAt(mathutil.Vec3{}, 1)
	if p[2] != 0 {
		t.Errorf("vertical orbit left the XY plane: %v", p)
	}
}

func TestBodyPinnedToParent(t *testing.T) {
	ring := &Body{}
	parent := mathutil.Vec3{3, 4, 5}
	if got := ring.positionAt(parent, 123); got != parent {
		t.Errorf("zero-radius body at %v, want parent position %v", got, parent)
	}
}

func TestCameraOrbitKeepsRadius(t *testing.T) {
	c := NewCamera()
	before := c.Eye.Sub(c.Center).Len()
	c.Orbit(0.3, 0.2)
	after := c.Eye.Sub(c.Center).Len()
	if diff := after - before; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("orbit changed radius: %v -> %v", before, after)
	}
}

func TestCameraZoomStopsAtCenter(t *testing.T) {
	c := NewCamera()
	c.Zoom(1e6)
	if c.Eye.Sub(c.Center).Len() < 1 {
		t.Error("zoom passed through the center")
	}
}

func TestSkyboxDeterministic(t *testing.T) {
	a := NewSkybox(100, 7)
	b := NewSkybox(100, 7)
	for i := range a.dirs {
		if a.dirs[i] != b.dirs[i] || a.brightness[i] != b.brightness[i] {
			t.Fatal("same seed produced different skies")
		}
	}
}
