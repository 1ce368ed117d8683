package raster

import "solar-renderer/internal/mathutil"

// LightConfig holds the parameters for the per-vertex intensity term
// the rasterizer interpolates across each triangle. Shaders that want
// richer lighting compute it themselves from the fragment normal.
type LightConfig struct {
	Dir     mathutil.Vec3 // direction toward the light, unit length
	Ambient float64
	Diffuse float64
}

// DefaultLightConfig matches the reference scene: a light in front of
// the camera with a soft ambient floor.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Dir:     mathutil.Vec3{0, 0.26, 0.97}.Normalize(),
		Ambient: 0.25,
		Diffuse: 0.85,
	}
}

// Intensity returns the clamped ambient+Lambertian term for a
// transformed vertex normal.
func (lc *LightConfig) Intensity(normal mathutil.Vec3) float64 {
	ndl := normal.Normalize().Dot(lc.Dir)
	if ndl < 0 {
		ndl = 0
	}
	v := lc.Ambient + ndl*lc.Diffuse
	if v > 1 {
		v = 1
	}
	return v
}
