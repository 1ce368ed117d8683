package mesh

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Ring builds a flat annulus in the XY plane (normal +Z), matching the
// polar banding the ring shaders compute from x and y. Inner and outer
// are radii; segments below 3 are raised to 3, and a non-positive or
// inverted radius pair falls back to a thin unit ring.
func Ring(inner, outer float64, segments int) []raster.Vertex {
	if segments < 3 {
		segments = 3
	}
	if inner <= 0 || outer <= inner {
		inner, outer = 0.8, 1.0
	}

	verts := make([]raster.Vertex, 0, segments*6)
	normal := mathutil.Vec3{0, 0, 1}
	white := raster.New(255, 255, 255)

	at := func(j int, r float64, u float64) raster.Vertex {
		phi := 2 * math.Pi * float64(j) / float64(segments)
		return raster.Vertex{
			Position: mathutil.Vec3{r * math.Cos(phi), r * math.Sin(phi), 0},
			Normal:   normal,
			TexCoord: mathutil.Vec2{float64(j) / float64(segments), u},
			Color:    white,
		}
	}

	for j := 0; j < segments; j++ {
		i0 := at(j, inner, 0)
		o0 := at(j, outer, 1)
		i1 := at(j+1, inner, 0)
		o1 := at(j+1, outer, 1)
		verts = append(verts, i0, o0, i1, i1, o0, o1)
	}
	return verts
}
