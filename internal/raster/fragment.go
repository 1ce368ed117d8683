package raster

import "solar-renderer/internal/mathutil"

// Fragment is one rasterized sample: an integer screen coordinate plus
// the attributes interpolated across the triangle. Produced only by
// the rasterizer, consumed only by shading.
type Fragment struct {
	X, Y      int
	Depth     float64
	Position  mathutil.Vec3 // interpolated object-space position
	Normal    mathutil.Vec3 // interpolated transformed normal
	Intensity float64       // interpolated scalar lighting term
}
