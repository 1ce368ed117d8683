// Package mesh produces flat triangle-list vertex buffers for the
// renderer: procedural primitives plus a minimal Wavefront OBJ loader
// for external models. Buffers are always a multiple of three
// vertices.
package mesh

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Sphere builds a unit UV-sphere with the given latitude/longitude
// resolution. Normals equal positions, so shaders can treat the
// object-space position as a point on the unit sphere. Resolutions
// below 3 are raised to 3.
func Sphere(stacks, slices int) []raster.Vertex {
	if stacks < 3 {
		stacks = 3
	}
	if slices < 3 {
		slices = 3
	}

	verts := make([]raster.Vertex, 0, stacks*slices*6)
	white := raster.New(255, 255, 255)

	at := func(i, j int) raster.Vertex {
		theta := math.Pi * float64(i) / float64(stacks)
		phi := 2 * math.Pi * float64(j) / float64(slices)
		p := mathutil.Vec3{
			math.Sin(theta) * math.Cos(phi),
			math.Cos(theta),
			math.Sin(theta) * math.Sin(phi),
		}
		return raster.Vertex{
			Position: p,
			Normal:   p,
			TexCoord: mathutil.Vec2{float64(j) / float64(slices), float64(i) / float64(stacks)},
			Color:    white,
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			v00 := at(i, j)
			v10 := at(i+1, j)
			v01 := at(i, j+1)
			v11 := at(i+1, j+1)

			// Pole rows collapse one triangle of each quad.
			if i > 0 {
				verts = append(verts, v00, v10, v01)
			}
			if i < stacks-1 {
				verts = append(verts, v01, v10, v11)
			}
		}
	}
	return verts
}
