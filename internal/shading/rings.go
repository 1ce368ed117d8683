package shading

import (
	"math"

	"solar-renderer/internal/raster"
)

// Ring shades the banded rings around Saturn and the moon: a polar
// sine pattern over the object-space position, no noise required.
var Ring raster.Shader = raster.ShaderFunc(shadeRing)

// UranusRing is the darker, noise-speckled ring variant.
var UranusRing raster.Shader = raster.ShaderFunc(shadeUranusRing)

func shadeRing(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	const bandFrequency = 20.0
	angle := math.Atan2(pos[1], pos[0])
	band := math.Pow(math.Sin(angle*bandFrequency)*0.5+0.5, 2)

	light := raster.FromFloat(0.8, 0.7, 0.5)
	dark := raster.FromFloat(0.6, 0.5, 0.3)

	base := light.Lerp(dark, band)
	return base.Mul(0.2).Add(base.Mul(diffuse)).Clamp()
}

func shadeUranusRing(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	n1 := sample3(u, 0, pos[0], pos[1], pos[2])
	n2 := sample3(u, 1, pos[0], pos[1], pos[2])

	base := raster.FromFloat(0.15, 0.15, 0.15)
	detail := raster.FromFloat(0.2, 0.2, 0.2)

	blend := base.Lerp(detail, (math.Abs(n1)+math.Abs(n2))/2)
	return blend.Mul(diffuse).Clamp()
}
