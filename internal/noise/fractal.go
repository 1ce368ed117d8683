package noise

import "math"

// FractalKind selects how octaves are combined.
type FractalKind int

const (
	// FBm sums octaves directly for layered, cloudy detail.
	FBm FractalKind = iota
	// Ridged folds each octave around zero for sharp crests.
	Ridged
)

// Fractal layers a base sampler over several octaves. Frequency scales
// the input coordinates, Lacunarity the per-octave frequency step and
// Gain the per-octave amplitude falloff. Output is renormalized by the
// total amplitude so it stays within [-1, 1].
type Fractal struct {
	Base       Sampler
	Kind       FractalKind
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// NewFractal fills in the conventional defaults (lacunarity 2, gain
// 0.5, one octave minimum).
func NewFractal(base Sampler, kind FractalKind, frequency float64, octaves int) *Fractal {
	if octaves < 1 {
		octaves = 1
	}
	return &Fractal{
		Base:       base,
		Kind:       kind,
		Frequency:  frequency,
		Octaves:    octaves,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

func (f *Fractal) Sample2D(x, y float64) float64 {
	sum, norm := 0.0, 0.0
	freq := f.Frequency
	amp := 1.0
	for o := 0; o < f.Octaves; o++ {
		v := f.Base.Sample2D(x*freq, y*freq)
		if f.Kind == Ridged {
			v = 1 - 2*math.Abs(v)
		}
		sum += v * amp
		norm += amp
		freq *= f.Lacunarity
		amp *= f.Gain
	}
	return clamp(sum / norm)
}

func (f *Fractal) Sample3D(x, y, z float64) float64 {
	sum, norm := 0.0, 0.0
	freq := f.Frequency
	amp := 1.0
	for o := 0; o < f.Octaves; o++ {
		v := f.Base.Sample3D(x*freq, y*freq, z*freq)
		if f.Kind == Ridged {
			v = 1 - 2*math.Abs(v)
		}
		sum += v * amp
		norm += amp
		freq *= f.Lacunarity
		amp *= f.Gain
	}
	return clamp(sum / norm)
}
