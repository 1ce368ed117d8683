package scene

import (
	"math"
	"math/rand"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Skybox is a seeded star field. Stars are fixed directions on the
// unit sphere, kept centered on the camera so they behave as if at
// infinity, and drawn as depth-tested points near the far plane.
type Skybox struct {
	dirs       []mathutil.Vec3
	brightness []float64
}

const skyboxRadius = 500.0

// NewSkybox generates count stars from the seed; the same seed always
// yields the same sky.
func NewSkybox(count int, seed int64) *Skybox {
	rng := rand.New(rand.NewSource(seed))
	s := &Skybox{
		dirs:       make([]mathutil.Vec3, count),
		brightness: make([]float64, count),
	}
	for i := 0; i < count; i++ {
		// Gaussian triple normalized: uniform over the sphere.
		d := mathutil.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}.Normalize()
		if d.Len() == 0 {
			d = mathutil.Vec3{0, 0, 1}
		}
		s.dirs[i] = d
		s.brightness[i] = 0.4 + 0.6*rng.Float64()
	}
	return s
}

// Render projects every star and writes it through the depth-tested
// point policy, so nearer geometry drawn later still covers stars.
func (s *Skybox) Render(fb *raster.Framebuffer, u *raster.Uniforms, eye mathutil.Vec3) {
	vp := mathutil.Mat4Mul(u.Projection, u.View)
	for i, dir := range s.dirs {
		world := eye.Add(dir.Scale(skyboxRadius))
		clip := vp.MulVec4(mathutil.Vec3W(world, 1))
		if clip[3] <= 0 {
			continue
		}
		ndc := clip.PerspectiveDivide()
		if ndc[2] > 1 || math.Abs(ndc[0]) > 1 || math.Abs(ndc[1]) > 1 {
			continue
		}
		screen := u.Viewport.MulVec4(ndc)

		v := s.brightness[i] * 255
		c := raster.Color{R: v, G: v, B: v}
		fb.Point(int(screen[0]+0.5), int(screen[1]+0.5), ndc[2], c)
	}
}
