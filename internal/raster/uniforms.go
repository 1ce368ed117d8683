package raster

import "solar-renderer/internal/mathutil"

// NoiseSampler is a deterministic scalar-field oracle: for a fixed
// instance the same coordinates always return the same value, and all
// values lie in [-1, 1]. Seeding and algorithm choice belong to the
// collaborator constructing the sampler; the pipeline only reads.
type NoiseSampler interface {
	Sample2D(x, y float64) float64
	Sample3D(x, y, z float64) float64
}

// Uniforms is the read-only per-draw-call bundle: transform matrices,
// elapsed time and the noise oracles the shader may sample. Built by
// the frame driver, borrowed (never mutated) by the pipeline.
type Uniforms struct {
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4
	Viewport   mathutil.Mat4
	Time       float64
	Noises     []NoiseSampler
}
