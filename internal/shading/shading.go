// Package shading holds the per-surface color functions. Each shader
// is pure: it derives a color from the fragment's interpolated
// attributes, the elapsed time and the noise oracles in the uniforms
// bundle, with no side effects. Callers resolve one shader per
// drawable and pass it to raster.Render.
package shading

import (
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// lightPos is the shared point light of the reference scene.
var lightPos = mathutil.Vec3{0, 0, 20}

// diffuseAt returns the Lambertian term for a fragment position and
// normal against the shared scene light.
func diffuseAt(pos, normal mathutil.Vec3) float64 {
	d := normal.Normalize().Dot(lightPos.Sub(pos).Normalize())
	if d < 0 {
		d = 0
	}
	return d
}

// sample3 reads a 3D noise value from slot idx, or 0 when the bundle
// carries fewer oracles. Shading stays total even on a misbuilt
// uniforms bundle.
func sample3(u *raster.Uniforms, idx int, x, y, z float64) float64 {
	if idx >= len(u.Noises) {
		return 0
	}
	return u.Noises[idx].Sample3D(x, y, z)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
