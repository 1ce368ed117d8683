package shading

import (
	"math"

	"solar-renderer/internal/raster"
)

// Lava is the sun surface: two offset 3D noise reads averaged for a
// smoother field, with a slow sinusoidal pulse on the depth axis.
var Lava raster.Shader = raster.ShaderFunc(shadeLava)

func shadeLava(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	bright := raster.New(255, 240, 0)
	dark := raster.New(130, 20, 0)

	x := frag.Position[0]
	y := frag.Position[1]
	z := frag.Depth

	const (
		baseFrequency    = 0.2
		pulsateAmplitude = 0.5
		zoom             = 1000.0
	)
	t := u.Time * 0.001
	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	n1 := sample3(u, 0, x*zoom, y*zoom, (z+pulsate)*zoom)
	n2 := sample3(u, 0, (x+1000)*zoom, (y+1000)*zoom, (z+1000+pulsate)*zoom)
	n := (n1 + n2) * 0.5

	return dark.Lerp(bright, n).Mul(frag.Intensity)
}
