// Package noise provides the deterministic scalar-field samplers the
// planet shaders consume. Every sampler returns values in [-1, 1] and
// is fully determined by its seed and parameters; the rendering core
// only sees the two-method sampling interface.
package noise

// Sampler is the oracle contract: deterministic for a fixed instance,
// output in [-1, 1].
type Sampler interface {
	Sample2D(x, y float64) float64
	Sample3D(x, y, z float64) float64
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
