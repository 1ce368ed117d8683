package noise

import "math"

// Distance selects the cell-distance metric.
type Distance int

const (
	Euclidean Distance = iota
	Manhattan
)

// Worley samples cellular noise: the distance to the nearest feature
// point of a seeded jittered grid, remapped to [-1, 1]. Small F1
// distances (cell centers) map toward -1, cell boundaries toward +1.
type Worley struct {
	seed int64
	dist Distance
}

func NewWorley(seed int64, dist Distance) *Worley {
	return &Worley{seed: seed, dist: dist}
}

func (w *Worley) Sample2D(x, y float64) float64 {
	cx, cy := math.Floor(x), math.Floor(y)
	best := math.Inf(1)
	for oy := -1.0; oy <= 1; oy++ {
		for ox := -1.0; ox <= 1; ox++ {
			gx, gy := cx+ox, cy+oy
			fx := gx + w.featureOffset(int64(gx), int64(gy), 0, 0)
			fy := gy + w.featureOffset(int64(gx), int64(gy), 0, 1)
			d := w.distance(x-fx, y-fy, 0)
			if d < best {
				best = d
			}
		}
	}
	return remapF1(best)
}

func (w *Worley) Sample3D(x, y, z float64) float64 {
	cx, cy, cz := math.Floor(x), math.Floor(y), math.Floor(z)
	best := math.Inf(1)
	for oz := -1.0; oz <= 1; oz++ {
		for oy := -1.0; oy <= 1; oy++ {
			for ox := -1.0; ox <= 1; ox++ {
				gx, gy, gz := cx+ox, cy+oy, cz+oz
				fx := gx + w.featureOffset(int64(gx), int64(gy), int64(gz), 0)
				fy := gy + w.featureOffset(int64(gx), int64(gy), int64(gz), 1)
				fz := gz + w.featureOffset(int64(gx), int64(gy), int64(gz), 2)
				d := w.distance(x-fx, y-fy, z-fz)
				if d < best {
					best = d
				}
			}
		}
	}
	return remapF1(best)
}

func (w *Worley) distance(dx, dy, dz float64) float64 {
	if w.dist == Manhattan {
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	}
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// featureOffset returns the jitter in [0, 1) for one axis of a grid
// cell's feature point, derived from the cell coordinate and seed by
// splitmix64-style mixing.
func (w *Worley) featureOffset(gx, gy, gz, axis int64) float64 {
	h := uint64(w.seed) ^ 0x9e3779b97f4a7c15
	for _, v := range [4]int64{gx, gy, gz, axis} {
		h ^= uint64(v) * 0xbf58476d1ce4e5b9
		h ^= h >> 27
		h *= 0x94d049bb133111eb
		h ^= h >> 31
	}
	return float64(h>>11) / float64(1<<53)
}

// remapF1 maps an F1 distance (typically within [0, ~1.2]) into the
// oracle range, clamping the rare larger values.
func remapF1(d float64) float64 {
	return clamp(d*2 - 1)
}
