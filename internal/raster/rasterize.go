package raster

// areaEpsilon is the signed-area magnitude below which a triangle is
// treated as degenerate and emits no fragments. Guards the barycentric
// divide as well as collinear and coincident vertices.
const areaEpsilon = 1e-8

// RasterizeTriangle scan-converts one screen-space triangle into
// fragments appended to dst, which is returned (pass dst[:0] to reuse
// a buffer across triangles).
//
// The candidate pixel region is the triangle's bounding box clamped to
// [0,width)×[0,height); a pixel is accepted when all three barycentric
// weights lie in [0,1] inclusive, so two triangles sharing an edge may
// both cover the boundary pixel. Depth and all carried attributes are
// interpolated linearly in screen space (not perspective-correct).
//
// This is the HOT PATH — no allocation beyond dst growth.
func RasterizeTriangle(v0, v1, v2 *Vertex, lc *LightConfig, width, height int, dst []Fragment) []Fragment {
	x0, y0, z0 := v0.ScreenPos[0], v0.ScreenPos[1], v0.ScreenPos[2]
	x1, y1, z1 := v1.ScreenPos[0], v1.ScreenPos[1], v1.ScreenPos[2]
	x2, y2, z2 := v2.ScreenPos[0], v2.ScreenPos[1], v2.ScreenPos[2]

	// Signed area (×2) via the edge function.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -areaEpsilon && det < areaEpsilon {
		return dst
	}
	invDet := 1.0 / det

	// Bounding box, clamped to the framebuffer.
	minX := int(min3(x0, x1, x2))
	maxX := int(max3(x0, x1, x2)) + 1
	minY := int(min3(y0, y1, y2))
	maxY := int(max3(y0, y1, y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= width {
		maxX = width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= height {
		maxY = height - 1
	}
	if minX > maxX || minY > maxY {
		return dst
	}

	// Per-vertex lighting intensity, interpolated below.
	i0 := lc.Intensity(v0.WorldNormal)
	i1 := lc.Intensity(v1.WorldNormal)
	i2 := lc.Intensity(v2.WorldNormal)

	// Precomputed edge deltas for the barycentric weights.
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	p0, p1, p2 := v0.Position, v1.Position, v2.Position
	n0, n1, n2 := v0.WorldNormal, v1.WorldNormal, v2.WorldNormal

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w0 > 1 || w1 < 0 || w1 > 1 || w2 < 0 || w2 > 1 {
				continue
			}

			dst = append(dst, Fragment{
				X:     sx,
				Y:     sy,
				Depth: w0*z0 + w1*z1 + w2*z2,
				Position: [3]float64{
					w0*p0[0] + w1*p1[0] + w2*p2[0],
					w0*p0[1] + w1*p1[1] + w2*p2[1],
					w0*p0[2] + w1*p1[2] + w2*p2[2],
				},
				Normal: [3]float64{
					w0*n0[0] + w1*n1[0] + w2*n2[0],
					w0*n0[1] + w1*n1[1] + w2*n2[1],
					w0*n0[2] + w1*n1[2] + w2*n2[2],
				},
				Intensity: w0*i0 + w1*i1 + w2*i2,
			})
		}
	}
	return dst
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float64) float64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
