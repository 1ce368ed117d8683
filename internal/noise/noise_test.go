package noise

import "testing"

// samplers used across the range and determinism checks.
func testSamplers() map[string]Sampler {
	return map[string]Sampler{
		"perlin":         NewPerlin(42),
		"simplex":        NewSimplex(1337),
		"worley-euclid":  NewWorley(601, Euclidean),
		"worley-manh":    NewWorley(2341, Manhattan),
		"fbm":            NewFractal(NewPerlin(42), FBm, 0.8, 5),
		"ridged":         NewFractal(NewSimplex(7), Ridged, 1.5, 4),
		"worley-fractal": NewFractal(NewWorley(99, Euclidean), FBm, 0.5, 3),
	}
}

func TestSamplersStayInRange(t *testing.T) {
	for name, s := range testSamplers() {
		for i := -20; i <= 20; i++ {
			for j := -20; j <= 20; j++ {
				x, y := float64(i)*0.37, float64(j)*0.53
				if v := s.Sample2D(x, y); v < -1 || v > 1 {
					t.Fatalf("%s: Sample2D(%v, %v) = %v out of [-1, 1]", name, x, y, v)
				}
				if v := s.Sample3D(x, y, x+y); v < -1 || v > 1 {
					t.Fatalf("%s: Sample3D out of range at (%v, %v)", name, x, y)
				}
			}
		}
	}
}

func TestSamplersDeterministic(t *testing.T) {
	for name, s := range testSamplers() {
		a := s.Sample3D(1.25, -3.5, 0.75)
		b := s.Sample3D(1.25, -3.5, 0.75)
		if a != b {
			t.Errorf("%s: repeated Sample3D differs: %v vs %v", name, a, b)
		}
	}
}

func TestSameSeedSameField(t *testing.T) {
	build := map[string]func() Sampler{
		"perlin":  func() Sampler { return NewPerlin(99) },
		"simplex": func() Sampler { return NewSimplex(99) },
		"worley":  func() Sampler { return NewWorley(99, Euclidean) },
		"fractal": func() Sampler { return NewFractal(NewPerlin(99), Ridged, 1.1, 3) },
	}
	for name, mk := range build {
		a, b := mk(), mk()
		for i := 0; i < 50; i++ {
			x := float64(i) * 0.41
			if a.Sample2D(x, -x) != b.Sample2D(x, -x) {
				t.Fatalf("%s: two instances with the same seed disagree at %v", name, x)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, b := NewPerlin(1), NewPerlin(2)
	same := 0
	const n = 50
	for i := 0; i < n; i++ {
		x := float64(i)*0.77 + 0.13
		if a.Sample2D(x, x*0.3) == b.Sample2D(x, x*0.3) {
			same++
		}
	}
	if same == n {
		t.Error("different seeds produced identical fields")
	}
}

func TestFractalDefaults(t *testing.T) {
	f := NewFractal(NewPerlin(1), FBm, 2.0, 0)
	if f.Octaves != 1 {
		t.Errorf("octaves = %d, want floor of 1", f.Octaves)
	}
	if f.Lacunarity != 2.0 || f.Gain != 0.5 {
		t.Errorf("defaults = (%v, %v), want (2, 0.5)", f.Lacunarity, f.Gain)
	}
}

func TestFractalSingleOctaveMatchesBase(t *testing.T) {
	base := NewPerlin(5)
	f := NewFractal(NewPerlin(5), FBm, 1.0, 1)
	for i := 0; i < 20; i++ {
		x := float64(i) * 0.31
		if f.Sample2D(x, x) != base.Sample2D(x, x) {
			t.Fatalf("one FBm octave at frequency 1 differs from base at %v", x)
		}
	}
}

func TestWorleyMetricsDiffer(t *testing.T) {
	e := NewWorley(7, Euclidean)
	m := NewWorley(7, Manhattan)
	same := 0
	const n = 40
	for i := 0; i < n; i++ {
		x := float64(i)*0.63 + 0.21
		if e.Sample2D(x, x*0.5) == m.Sample2D(x, x*0.5) {
			same++
		}
	}
	if same == n {
		t.Error("Euclidean and Manhattan metrics produced identical fields")
	}
}
