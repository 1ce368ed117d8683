package noise

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Perlin samples classic Perlin gradient noise. The library's raw
// output can slightly exceed unit range, so samples are clamped to
// keep the oracle contract.
type Perlin struct {
	p *perlin.Perlin
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (p *Perlin) Sample2D(x, y float64) float64 {
	return clamp(p.p.Noise2D(x, y))
}

func (p *Perlin) Sample3D(x, y, z float64) float64 {
	return clamp(p.p.Noise3D(x, y, z))
}
