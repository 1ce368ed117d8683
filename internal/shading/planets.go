package shading

import (
	"math"

	"solar-renderer/internal/raster"
)

// Planet surface shaders. Each reads the noise slots its scene recipe
// fills, blends the reference palette, and applies diffuse lighting
// from the fragment normal. Slot order matches the scene recipes.
var (
	Earth   raster.Shader = raster.ShaderFunc(shadeEarth)
	Moon    raster.Shader = raster.ShaderFunc(shadeMoon)
	Mercury raster.Shader = raster.ShaderFunc(shadeMercury)
	Venus   raster.Shader = raster.ShaderFunc(shadeVenus)
	Mars    raster.Shader = raster.ShaderFunc(shadeMars)
	Phobos  raster.Shader = raster.ShaderFunc(shadePhobos)
	Jupiter raster.Shader = raster.ShaderFunc(shadeJupiter)
	Saturn  raster.Shader = raster.ShaderFunc(shadeSaturn)
	Uranus  raster.Shader = raster.ShaderFunc(shadeUranus)
	Neptune raster.Shader = raster.ShaderFunc(shadeNeptune)
	Pluto   raster.Shader = raster.ShaderFunc(shadePluto)
	Eris    raster.Shader = raster.ShaderFunc(shadeEris)
	Sedna   raster.Shader = raster.ShaderFunc(shadeSedna)
)

func shadeEarth(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	normal := frag.Normal.Normalize()
	diffuse := diffuseAt(pos, normal)

	time := u.Time * 0.0001

	const (
		landThreshold  = 0.5
		cloudThreshold = 0.7
		landSpeed      = 0.01
		cloudSpeed     = 0.03
	)

	water := raster.FromFloat(0.0, 0.1, 0.4)
	lowLand := raster.FromFloat(0.2, 0.5, 0.2)
	highLand := raster.FromFloat(0.5, 0.4, 0.3)
	snow := raster.FromFloat(1.0, 1.0, 1.0)
	cloud := raster.FromFloat(0.8, 0.8, 0.8)
	atmosphere := raster.FromFloat(0.0, 0.4, 0.8)

	// Terrain: three noise layers at rising frequency.
	mountain := sample3(u, 0, pos[0]*0.5+time*landSpeed, pos[1]*0.5+time*landSpeed, pos[2]*0.5+time*landSpeed)
	hill := sample3(u, 1, pos[0]+time*landSpeed, pos[1]+time*landSpeed, pos[2]+time*landSpeed)
	detail := sample3(u, 2, pos[0]*2+time*landSpeed, pos[1]*2+time*landSpeed, pos[2]*2+time*landSpeed)

	terrain := clampSym(mountain*0.5 + hill*0.3 + detail*0.2)
	terrainNorm := (terrain + 1) * 0.5

	var base raster.Color
	if terrainNorm > landThreshold {
		landHeight := clamp01((terrainNorm - landThreshold) / (1 - landThreshold))
		base = lowLand.Lerp(highLand, landHeight).Lerp(snow, math.Pow(landHeight, 3))
	} else {
		base = water
	}

	cloudNoise := sample3(u, 3, pos[0]+time*cloudSpeed, pos[1]+time*cloudSpeed, pos[2]+time*cloudSpeed)
	cloudNorm := (cloudNoise + 1.5) * 0.5
	cloudOpacity := clamp01((cloudNorm - cloudThreshold) / (1 - cloudThreshold))
	base = base.Lerp(cloud, cloudOpacity)

	final := base.Mul(0.3).Add(base.Mul(diffuse))

	// Thin atmosphere rim fades in away from the unit-sphere surface.
	const atmosphereRadius = 1.05
	atmosphereFactor := clamp01((pos.Len() - 1) / (atmosphereRadius - 1))
	atmosphereNoise := sample3(u, 4, pos[0]*10+time*0.005, pos[1]*10+time*0.005, pos[2]*10+time*0.005)
	atmosphereNorm := (atmosphereNoise + 2.5) * 0.5
	final = final.Lerp(atmosphere, atmosphereFactor*atmosphereNorm)

	return final.Clamp()
}

func shadeMoon(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	n1 := sample3(u, 0, pos[0]*0.5, pos[1]*0.5, pos[2]*0.5)
	n2 := sample3(u, 1, pos[0]*2, pos[1]*2, pos[2]*2)
	n3 := sample3(u, 2, pos[0]*5, pos[1]*5, pos[2]*5)
	combined := (clampSym(n1*0.6+n2*0.3+n3*0.1) + 1) * 0.5

	lightGray := raster.FromFloat(0.9, 0.9, 0.9)
	darkGray := raster.FromFloat(0.001, 0.001, 0.001)
	base := darkGray.Lerp(lightGray, combined)

	return base.Mul(0.2).Add(base.Mul(diffuse)).Clamp()
}

func shadeMercury(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	crater := sample3(u, 0, pos[0], pos[1], pos[2])
	texture := sample3(u, 1, pos[0]*10, pos[1]*10, pos[2]*10)
	undulation := sample3(u, 2, pos[0]*0.1, pos[1]*0.1, pos[2]*0.1)

	base := raster.FromFloat(0.6, 0.5, 0.4)
	darkCrater := raster.FromFloat(0.3, 0.3, 0.3)
	highlight := raster.FromFloat(0.7, 0.7, 0.6)

	final := base.Lerp(darkCrater, math.Abs(crater)).
		Lerp(highlight, math.Abs(texture)).
		Lerp(base, math.Abs(undulation))

	return final.Mul(0.2).Add(final.Mul(diffuse)).Clamp()
}

func shadeVenus(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	surfaceNoise := sample3(u, 0, pos[0], pos[1], pos[2])
	atmosphereNoise := sample3(u, 1, pos[0]*0.1, pos[1]*0.1, pos[2]*0.1)

	surface := raster.FromFloat(0.8, 0.4, 0.1)
	cloud := raster.FromFloat(0.9, 0.85, 0.7)
	glow := raster.FromFloat(0.95, 0.65, 0.2)

	base := surface.Lerp(cloud, math.Abs(surfaceNoise)).Lerp(glow, math.Abs(atmosphereNoise))
	return base.Mul(0.2).Add(base.Mul(diffuse)).Clamp()
}

func shadeMars(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	detail := sample3(u, 1, pos[0], pos[1], pos[2])
	atmospheric := sample3(u, 2, pos[0], pos[1], pos[2])

	base := raster.FromFloat(1.0, 0.7, 0.5)
	detailColor := raster.FromFloat(0.12, 0.09, 0.05)
	atmosphericColor := raster.FromFloat(0.9, 0.4, 0.3)

	combined := base.Lerp(detailColor, math.Abs(detail)).Lerp(atmosphericColor, math.Abs(atmospheric))
	return combined.Mul(diffuse).Clamp()
}

func shadePhobos(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	surface := sample3(u, 1, pos[0], pos[1], pos[2])
	detail := sample3(u, 0, pos[0], pos[1], pos[2])

	base := raster.FromFloat(0.6, 0.5, 0.4)
	darkCrater := raster.FromFloat(0.3, 0.3, 0.3)
	highlight := raster.FromFloat(0.7, 0.7, 0.6)

	final := base.Lerp(darkCrater, math.Abs(surface)).Lerp(highlight, math.Abs(detail))
	return final.Mul(diffuse).Clamp()
}

func shadeJupiter(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	band := (sample3(u, 0, pos[0], pos[1], pos[2]) + 1) * 0.5
	highClouds := (sample3(u, 1, pos[0], pos[1], pos[2]) + 1) * 0.5
	deepAtmos := (sample3(u, 2, pos[0], pos[1], pos[2]) + 1) * 0.5

	lightBrown := raster.FromFloat(0.804, 0.522, 0.247)
	beige := raster.FromFloat(0.870, 0.721, 0.529)
	highCloudColor := raster.FromFloat(0.9, 0.9, 0.9)
	deepColor := raster.FromFloat(0.5, 0.4, 0.3)

	final := lightBrown.Lerp(beige, band).Lerp(highCloudColor, highClouds).Lerp(deepColor, deepAtmos)
	return final.Mul(0.1).Add(final.Mul(diffuse)).Clamp()
}

func shadeSaturn(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	band := sample3(u, 0, pos[0], pos[1], pos[2])
	cloud := sample3(u, 1, pos[0], pos[1], pos[2])

	base := raster.FromFloat(0.5, 0.5, 0.5)
	bandColor := raster.FromFloat(0.7, 0.7, 0.5)
	cloudColor := raster.FromFloat(0.9, 0.9, 0.7)

	color := base.Lerp(bandColor, (band+1)*0.5).Lerp(cloudColor, math.Abs(cloud))
	return color.Mul(diffuse).Clamp()
}

func shadeUranus(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	secondary := sample3(u, 1, pos[0], pos[1], pos[2])

	base := raster.FromFloat(0.4, 0.5, 0.6)
	secondaryColor := raster.FromFloat(0.3, 0.4, 0.5)

	return base.Lerp(secondaryColor, math.Abs(secondary)).Mul(diffuse).Clamp()
}

func shadeNeptune(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)

	atmosphere := sample3(u, 1, pos[0], pos[1], pos[2])

	base := raster.FromFloat(0.2, 0.2, 0.6)
	atmosphereColor := raster.FromFloat(0.1, 0.1, 0.7)

	return base.Lerp(atmosphereColor, math.Abs(atmosphere)).Mul(diffuse).Clamp()
}

func shadePluto(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	return icyBody(frag, u,
		raster.FromFloat(0.5, 0.5, 0.5),
		raster.FromFloat(0.8, 0.8, 0.9))
}

func shadeEris(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	return icyBody(frag, u,
		raster.FromFloat(0.6, 0.5, 0.4),
		raster.FromFloat(0.7, 0.7, 0.8))
}

func shadeSedna(frag *raster.Fragment, u *raster.Uniforms) raster.Color {
	return icyBody(frag, u,
		raster.FromFloat(0.4, 0.3, 0.3),
		raster.FromFloat(0.5, 0.5, 0.6))
}

// icyBody is the shared outer-body look: a base rock tone blended
// toward an ice tint by the second noise slot.
func icyBody(frag *raster.Fragment, u *raster.Uniforms, base, ice raster.Color) raster.Color {
	pos := frag.Position
	diffuse := diffuseAt(pos, frag.Normal)
	iceNoise := sample3(u, 1, pos[0], pos[1], pos[2])
	return base.Lerp(ice, math.Abs(iceNoise)).Mul(diffuse).Clamp()
}

func clampSym(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
