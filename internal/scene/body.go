package scene

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Body is one drawable of the system: a mesh, a surface shader with
// its noise oracles, and orbit parameters. Bodies with a Parent orbit
// that body's current position; an orbit radius of zero pins the body
// to its parent (rings).
type Body struct {
	Name   string
	Parent string // empty = orbits the sun at the origin

	OrbitRadius   float64
	OrbitRate     float64 // radians per time unit
	VerticalOrbit bool    // orbit in the XY plane instead of XZ (Phobos)

	Scale      float64
	Rotation   mathutil.Vec3
	RotationAt func(time float64) mathutil.Vec3 // optional spin, overrides Rotation

	Shader raster.Shader
	Noises []raster.NoiseSampler
	Verts  []raster.Vertex

	Trail *Trail
}

// positionAt computes the body's world position for a frame given its
// parent's position.
func (b *Body) positionAt(parent mathutil.Vec3, time float64) mathutil.Vec3 {
	if b.OrbitRadius == 0 {
		return parent
	}
	angle := time * b.OrbitRate
	if b.VerticalOrbit {
		return parent.Add(mathutil.Vec3{
			b.OrbitRadius * math.Cos(angle),
			b.OrbitRadius * math.Sin(angle),
			0,
		})
	}
	return parent.Add(mathutil.Vec3{
		b.OrbitRadius * math.Cos(angle),
		0,
		b.OrbitRadius * math.Sin(angle),
	})
}

// rotationAt resolves the body's model rotation for a frame.
func (b *Body) rotationAt(time float64) mathutil.Vec3 {
	if b.RotationAt != nil {
		return b.RotationAt(time)
	}
	return b.Rotation
}
