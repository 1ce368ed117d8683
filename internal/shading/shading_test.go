package shading

import (
	"math"
	"testing"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
	"solar-renderer/internal/raster"
)

func allShaders() map[string]raster.Shader {
	return map[string]raster.Shader{
		"lava":       Lava,
		"mercury":    Mercury,
		"venus":      Venus,
		"earth":      Earth,
		"moon":       Moon,
		"mars":       Mars,
		"phobos":     Phobos,
		"jupiter":    Jupiter,
		"saturn":     Saturn,
		"uranus":     Uranus,
		"neptune":    Neptune,
		"pluto":      Pluto,
		"eris":       Eris,
		"sedna":      Sedna,
		"ring":       Ring,
		"uranusRing": UranusRing,
	}
}

func testUniforms(slots int) raster.Uniforms {
	noises := make([]raster.NoiseSampler, slots)
	for i := range noises {
		noises[i] = noise.NewFractal(noise.NewPerlin(int64(i+1)), noise.FBm, 1.0, 3)
	}
	return raster.Uniforms{
		Model:      mathutil.Mat4Identity(),
		View:       mathutil.Mat4Identity(),
		Projection: mathutil.Mat4Identity(),
		Viewport:   mathutil.Mat4Identity(),
		Time:       1234.5,
		Noises:     noises,
	}
}

func testFragment() raster.Fragment {
	n := mathutil.Vec3{0.2, 0.5, 0.84}.Normalize()
	return raster.Fragment{
		X: 3, Y: 4,
		Depth:     0.25,
		Position:  n,
		Normal:    n,
		Intensity: 0.8,
	}
}

func checkColor(t *testing.T, name string, c raster.Color) {
	t.Helper()
	for _, ch := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			t.Fatalf("%s: non-finite channel in %+v", name, c)
		}
	}
}

func TestShadersDeterministic(t *testing.T) {
	u := testUniforms(5)
	frag := testFragment()
	for name, s := range allShaders() {
		f1, f2 := frag, frag
		a := s.Shade(&f1, &u)
		b := s.Shade(&f2, &u)
		checkColor(t, name, a)
		if a != b {
			t.Errorf("%s: repeated shade differs: %+v vs %+v", name, a, b)
		}
	}
}

func TestShadersTotalWithoutNoises(t *testing.T) {
	// An empty noise bundle must not panic any shader; missing slots
	// read as zero.
	u := testUniforms(0)
	frag := testFragment()
	for name, s := range allShaders() {
		f := frag
		checkColor(t, name, s.Shade(&f, &u))
	}
}

func TestLavaPulsates(t *testing.T) {
	u1 := testUniforms(1)
	u2 := testUniforms(1)
	u2.Time = u1.Time + 5000
	frag := testFragment()

	f1, f2 := frag, frag
	a := Lava.Shade(&f1, &u1)
	b := Lava.Shade(&f2, &u2)
	if a == b {
		t.Error("lava surface did not change with time")
	}
}

func TestLavaScalesWithIntensity(t *testing.T) {
	u := testUniforms(1)
	dark := testFragment()
	dark.Intensity = 0

	if c := Lava.Shade(&dark, &u); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("zero intensity lava = %+v, want black", c)
	}
}
