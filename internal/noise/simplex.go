package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Simplex samples OpenSimplex gradient noise.
type Simplex struct {
	n opensimplex.Noise
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

func (s *Simplex) Sample2D(x, y float64) float64 {
	return clamp(s.n.Eval2(x, y))
}

func (s *Simplex) Sample3D(x, y, z float64) float64 {
	return clamp(s.n.Eval3(x, y, z))
}
