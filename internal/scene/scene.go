// Package scene is the frame driver: it owns the camera, the body
// table with orbit parameters and noise recipes, and builds one
// Uniforms bundle per drawable per frame before handing each drawable
// to the rendering core.
package scene

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/shading"
)

const (
	fovDegrees = 45.0
	nearPlane  = 0.1
	farPlane   = 1000.0

	sphereStacks = 24
	sphereSlices = 48
	ringSegments = 64

	skyboxStars = 5000
	skyboxSeed  = 7

	trailThickness = 1
)

// Scene holds everything needed to render the solar system at a point
// in time. One Scene must only be used by one goroutine; concurrent
// frame rendering takes one Scene per worker.
type Scene struct {
	Camera Camera
	Light  raster.LightConfig

	projection mathutil.Mat4
	viewport   mathutil.Mat4

	sky    *Skybox
	sun    *Body
	bodies []*Body

	trailStart raster.Color
	trailEnd   raster.Color
}

// New builds the reference solar system for a target of the given
// pixel dimensions.
func New(width, height int) *Scene {
	sphere := mesh.Sphere(sphereStacks, sphereSlices)
	ring := mesh.Ring(0.6, 1.0, ringSegments)

	s := &Scene{
		Camera:     NewCamera(),
		Light:      raster.DefaultLightConfig(),
		projection: mathutil.Perspective(mathutil.Deg2Rad(fovDegrees), float64(width)/float64(height), nearPlane, farPlane),
		viewport:   mathutil.Viewport(float64(width), float64(height)),
		sky:        NewSkybox(skyboxStars, skyboxSeed),
		trailStart: raster.New(100, 100, 100),
		trailEnd:   raster.New(0, 0, 0),
	}

	s.sun = &Body{
		Name:   "sun",
		Scale:  5.0,
		Shader: shading.Lava,
		Noises: lavaNoises(),
		Verts:  sphere,
	}

	planet := func(name string, radius, speed, scale float64, trailLen int, sh raster.Shader, noises []raster.NoiseSampler) *Body {
		return &Body{
			Name:        name,
			OrbitRadius: radius,
			OrbitRate:   speed * 0.01,
			Scale:       scale,
			Shader:      sh,
			Noises:      noises,
			Verts:       sphere,
			Trail:       NewTrail(trailLen),
		}
	}

	earth := planet("earth", 12, 0.01, 1.2, 200, shading.Earth, earthNoises())

	moonRate := 0.005 * 0.025
	moon := &Body{
		Name:        "moon",
		Parent:      "earth",
		OrbitRadius: 1.0,
		OrbitRate:   moonRate,
		Scale:       0.5,
		RotationAt: func(t float64) mathutil.Vec3 {
			return mathutil.Vec3{0, t * moonRate, 0}
		},
		Shader: shading.Moon,
		Noises: moonNoises(),
		Verts:  sphere,
	}

	// Two counter-spinning decorative rings around the moon.
	moonRing1 := &Body{
		Name:   "moon-ring-1",
		Parent: "moon",
		Scale:  0.5 * 0.75,
		RotationAt: func(t float64) mathutil.Vec3 {
			return mathutil.Vec3{0, 0, t * 0.0005}
		},
		Shader: shading.Ring,
		Verts:  ring,
	}
	moonRing2 := &Body{
		Name:   "moon-ring-2",
		Parent: "moon",
		Scale:  0.5 * 0.75,
		RotationAt: func(t float64) mathutil.Vec3 {
			return mathutil.Vec3{t * -0.000725, 0, 0}
		},
		Shader: shading.Ring,
		Verts:  ring,
	}

	mars := planet("mars", 14, 0.008, 0.8, 250, shading.Mars, marsNoises())

	phobos := &Body{
		Name:          "phobos",
		Parent:        "mars",
		OrbitRadius:   1.5,
		OrbitRate:     0.0002,
		VerticalOrbit: true,
		Scale:         0.33,
		Rotation:      mathutil.Vec3{5, 0, 0},
		Shader:        shading.Phobos,
		Noises:        phobosNoises(),
		Verts:         sphere,
	}

	saturn := planet("saturn", 22, 0.004, 2.5, 350, shading.Saturn, saturnNoises())

	s.bodies = []*Body{
		earth, moon, moonRing1, moonRing2,
		planet("venus", 10, 0.015, 0.9, 150, shading.Venus, venusNoises()),
		planet("mercury", 8, 0.02, 0.7, 100, shading.Mercury, mercuryNoises()),
		planet("jupiter", 18, 0.005, 3.0, 300, shading.Jupiter, jupiterNoises()),
		mars, phobos,
		saturn,
	}
	s.bodies = append(s.bodies, saturnRings(ring)...)
	s.bodies = append(s.bodies,
		planet("uranus", 26, 0.003, 1.8, 400, shading.Uranus, uranusNoises()),
		&Body{
			Name:     "uranus-ring",
			Parent:   "uranus",
			Scale:    2.4,
			Rotation: mathutil.Vec3{0, 0.1, 1.0},
			Shader:   shading.UranusRing,
			Noises:   uranusRingNoises(),
			Verts:    ring,
		},
		planet("neptune", 30, 0.002, 1.6, 450, shading.Neptune, neptuneNoises()),
		planet("pluto", 34, 0.0015, 1.0, 500, shading.Pluto, plutoNoises()),
		planet("eris", 38, 0.0012, 1.2, 550, shading.Eris, erisNoises()),
		planet("sedna", 42, 0.001, 1.3, 600, shading.Sedna, sednaNoises()),
	)

	return s
}

// saturnRings builds the six concentric tilted rings.
func saturnRings(ring []raster.Vertex) []*Body {
	const (
		numRings          = 6
		baseScale         = 2.0
		scaleIncrement    = 0.1
		rotationIncrement = 0.015
	)
	bodies := make([]*Body, 0, numRings)
	for i := 0; i < numRings; i++ {
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		bodies = append(bodies, &Body{
			Name:     "saturn-ring",
			Parent:   "saturn",
			Scale:    baseScale + float64(i)*scaleIncrement,
			Rotation: mathutil.Vec3{0, 1.0, 1.0 + float64(i)*rotationIncrement*sign},
			Shader:   shading.Ring,
			Verts:    ring,
		})
	}
	return bodies
}

// Bodies exposes the orbiting body table (without the sun).
func (s *Scene) Bodies() []*Body {
	return s.bodies
}

// RenderFrame draws one complete frame at the given scene time:
// clear, skybox, orbiting bodies, orbit trails, then the sun. Trails
// accumulate one position per call, so consecutive times should be
// monotonically increasing.
func (s *Scene) RenderFrame(fb *raster.Framebuffer, time float64) {
	fb.Clear()

	view := s.Camera.View()
	base := raster.Uniforms{
		Model:      mathutil.Mat4Identity(),
		View:       view,
		Projection: s.projection,
		Viewport:   s.viewport,
		Time:       time,
	}

	s.sky.Render(fb, &base, s.Camera.Eye)

	positions := map[string]mathutil.Vec3{"": {}, "sun": {}}
	for _, b := range s.bodies {
		pos := b.positionAt(positions[b.Parent], time)
		positions[b.Name] = pos
		if b.Trail != nil {
			b.Trail.Add(pos)
		}

		u := base
		u.Model = mathutil.ModelMatrix(pos, b.Scale, b.rotationAt(time))
		u.Noises = b.Noises
		raster.Render(fb, &u, b.Verts, &s.Light, b.Shader)
	}

	for _, b := range s.bodies {
		if b.Trail != nil {
			s.renderTrail(fb, view, b.Trail)
		}
	}

	sunU := base
	sunU.Model = mathutil.ModelMatrix(mathutil.Vec3{}, s.sun.Scale, s.sun.Rotation)
	sunU.Noises = s.sun.Noises
	raster.Render(fb, &sunU, s.sun.Verts, &s.Light, s.sun.Shader)
}

// ReplayTrails rebuilds every trail as if frames 0..frame-1 had
// already been rendered in order, which lets frames be rendered out
// of order by independent workers. timeAt maps a frame index to its
// scene time.
func (s *Scene) ReplayTrails(frame int, timeAt func(int) float64) {
	maxLen := 0
	for _, b := range s.bodies {
		if b.Trail == nil {
			continue
		}
		b.Trail.Reset()
		if b.Trail.max > maxLen {
			maxLen = b.Trail.max
		}
	}

	start := frame - maxLen
	if start < 0 {
		start = 0
	}
	for f := start; f < frame; f++ {
		t := timeAt(f)
		positions := map[string]mathutil.Vec3{"": {}, "sun": {}}
		for _, b := range s.bodies {
			pos := b.positionAt(positions[b.Parent], t)
			positions[b.Name] = pos
			if b.Trail != nil {
				b.Trail.Add(pos)
			}
		}
	}
}

// renderTrail projects the trail positions and draws fading
// depth-tested line segments between consecutive points, oldest
// segments darkest.
func (s *Scene) renderTrail(fb *raster.Framebuffer, view mathutil.Mat4, t *Trail) {
	positions := t.Positions()
	if len(positions) < 2 {
		return
	}

	vp := mathutil.Mat4Mul(s.projection, view)
	type screenPoint struct {
		x, y  int
		depth float64
		ok    bool
	}
	pts := make([]screenPoint, len(positions))
	for i, p := range positions {
		clip := vp.MulVec4(mathutil.Vec3W(p, 1))
		if clip[3] <= 0 {
			continue
		}
		ndc := clip.PerspectiveDivide()
		screen := s.viewport.MulVec4(ndc)
		pts[i] = screenPoint{
			x:     int(math.Round(screen[0])),
			y:     int(math.Round(screen[1])),
			depth: ndc[2],
			ok:    true,
		}
	}

	n := len(pts)
	for i := 0; i+1 < n; i++ {
		if !pts[i].ok || !pts[i+1].ok {
			continue
		}
		c := s.trailStart.Lerp(s.trailEnd, float64(i)/float64(n-1))
		fb.DrawLine(pts[i].x, pts[i].y, pts[i+1].x, pts[i+1].y, pts[i].depth, trailThickness, c)
	}
}
